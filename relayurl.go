package nostr

import (
	"strings"

	"github.com/ImVexed/fasturl"
)

// scheme a relay hint ends up with, keyed by the scheme it was written with
var relaySchemes = map[string]string{
	"ws":    "ws",
	"wss":   "wss",
	"http":  "ws",
	"https": "wss",
}

// NormalizeRelayURL turns relay hints into a canonical ws:// or wss:// form.
// http(s) becomes ws(s), a missing scheme becomes wss (ws for localhost), the
// host is lowercased, runs of slashes are collapsed and trailing ones dropped.
// Hints that still don't parse yield "".
func NormalizeRelayURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}

	scheme, rest, found := strings.Cut(u, "://")
	if !found {
		scheme, rest = "", u
	}
	rest = collapseSlashes(rest)
	if rest == "" || rest == "/" {
		return ""
	}
	if scheme != "" {
		rest = scheme + "://" + rest
	}

	p, err := fasturl.ParseURL(rest)
	if err != nil {
		return ""
	}

	// "localhost:1234" parses as protocol "localhost" and host "1234"
	if p.Port == "" && len(p.Protocol) > 5 {
		p.Protocol, p.Host, p.Port = "", p.Protocol, p.Host
	}

	host := strings.ToLower(p.Host)
	proto := p.Protocol
	if proto == "" {
		proto = "wss"
		if host == "localhost" || host == "127.0.0.1" {
			proto = "ws"
		}
	} else if ws, ok := relaySchemes[strings.ToLower(proto)]; ok {
		proto = ws
	}

	normalized := proto + "://" + host
	if p.Port != "" {
		normalized += ":" + p.Port
	}
	normalized += strings.TrimRight(p.Path, "/")
	if p.Query != "" {
		normalized += "?" + p.Query
	}
	return normalized
}

// collapseSlashes squeezes every run of '/' into a single one, which fasturl
// would otherwise refuse to parse.
func collapseSlashes(s string) string {
	if !strings.Contains(s, "//") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	prev := byte(0)
	for i := 0; i < len(s); i++ {
		if s[i] == '/' && prev == '/' {
			continue
		}
		prev = s[i]
		b.WriteByte(prev)
	}
	return b.String()
}
