package nip90

import (
	"fmt"

	"github.com/nbd-wtf/go-nostr-kinds"
)

// Data vending machine kinds: requests live in 5000-5999, each result sits
// exactly 1000 above its request, and feedback for any job is 7000.
const (
	KindJobFeedback nostr.Kind = 7000

	requestBase nostr.Kind = 5000
	resultBase  nostr.Kind = 6000
	resultShift nostr.Kind = resultBase - requestBase
)

type Role uint8

const (
	NotAJob Role = iota
	Request
	Result
	Feedback
)

func (r Role) String() string {
	switch r {
	case Request:
		return "request"
	case Result:
		return "result"
	case Feedback:
		return "feedback"
	}
	return "none"
}

type Job struct {
	RequestKind nostr.Kind
	Name        string
	Description string
	InputType   string
	Params      []string
}

func (j Job) ResultKind() nostr.Kind { return j.RequestKind + resultShift }

// RoleOf tells where a kind sits in the job request/result/feedback scheme.
func RoleOf(k nostr.Kind) Role {
	switch {
	case k == KindJobFeedback:
		return Feedback
	case requestBase <= k && k < resultBase:
		return Request
	case resultBase <= k && k < resultBase+1000:
		return Result
	}
	return NotAJob
}

// ResultKindFor returns the kind a result to the given request is published with.
func ResultKindFor(request nostr.Kind) (nostr.Kind, error) {
	if RoleOf(request) != Request {
		return 0, fmt.Errorf("kind %d is not a job request", request)
	}
	return request + resultShift, nil
}

// RequestKindFor is the inverse of ResultKindFor.
func RequestKindFor(result nostr.Kind) (nostr.Kind, error) {
	if RoleOf(result) != Result {
		return 0, fmt.Errorf("kind %d is not a job result", result)
	}
	return result - resultShift, nil
}

// JobFor finds the documented job a request or result kind belongs to.
// Job kinds nobody documented yet are still valid, they just have no entry.
func JobFor(k nostr.Kind) (Job, bool) {
	switch RoleOf(k) {
	case Result:
		k -= resultShift
	case Request:
	default:
		return Job{}, false
	}
	job, ok := jobsByKind[k]
	return job, ok
}

var jobsByKind = make(map[nostr.Kind]Job, len(Jobs))

func init() {
	for _, job := range Jobs {
		if RoleOf(job.RequestKind) != Request {
			panic(fmt.Sprintf("job %q has non-request kind %d", job.Name, job.RequestKind))
		}
		jobsByKind[job.RequestKind] = job
	}
}

var Jobs = []Job{
	{5000, "Text extraction", "Job request to extract text from some kind of input.", "url",
		[]string{"alignment", "range", "raw", "segment", "word"}},
	{5001, "Summarization", "Summarize input(s)", "event",
		[]string{"length", "paragraphs", "words"}},
	{5002, "Translation", "Translate input(s)", "event", nil},
	{5050, "Text Generation", "Job request to generate text using AI models.", "prompt",
		[]string{"frequency_penalty", "max_tokens", "model", "temperature", "top_k", "top_p"}},
	{5100, "Image Generation", "Job request to generate Images using AI models.", "text",
		[]string{"${width}x${height}", "1024x768", "512x512", "lora", "model", "negative_prompt", "ratio", "size"}},
	{5200, "Video Conversion", "Job request to convert a Video to another Format.", "url", nil},
	{5201, "Video Translation", "Job request to translate video audio content into target language with or without subtitles.", "url",
		[]string{"format", "language", "range", "subtitle"}},
	{5202, "Image-to-Video Conversion", "Job request to convert a static Image to a a short animated video clip", "url", nil},
	{5250, "Text-to-Speech Generation", "Job request to convert text input to an audio file.", "text", nil},
	{5300, "Nostr Content Discovery", "Job request to discover nostr-native content", "text", nil},
	{5301, "Nostr People Discovery", "Job request to discover nostr pubkeys", "text", nil},
	{5302, "Nostr Content Search", "Job to search for notes based on a prompt", "text",
		[]string{"max_results", "since", "until", "users"}},
	{5303, "Nostr People Search", "Job to search for profiles based on a prompt", "text", nil},
	{5400, "Nostr Event Count", "Job request to count matching events", "text",
		[]string{"content", "group", "pubkey", "relay", "reply", "root"}},
	{5500, "Malware Scanning", "Job request to perform a Malware Scan on files.", "", nil},
	{5900, "Nostr Event Time Stamping", "NIP-03 Timestamping of nostr events", "event", nil},
	{5901, "OP_RETURN Creation", "Create a bitcoin transaction with an OP_RETURN", "text", nil},
	{5905, "Nostr Event Publish Schedule", "Schedule nostr events for future publishing", "text", nil},
	{5970, "Event PoW Delegation", "Delegate PoW of an event to a provider.", "text", nil},
}
