package nip90

import (
	"testing"

	"github.com/nbd-wtf/go-nostr-kinds"
	"github.com/stretchr/testify/require"
)

func TestRoleOf(t *testing.T) {
	for _, tc := range []struct {
		kind nostr.Kind
		want Role
	}{
		{4999, NotAJob},
		{5000, Request},
		{5999, Request},
		{6000, Result},
		{6999, Result},
		{7000, Feedback},
		{7001, NotAJob},
		{nostr.KindTextNote, NotAJob},
	} {
		require.Equal(t, tc.want, RoleOf(tc.kind), "kind %d", tc.kind)
	}
}

func TestJobKinds(t *testing.T) {
	for _, job := range Jobs {
		res, err := ResultKindFor(job.RequestKind)
		require.NoError(t, err)
		require.Equal(t, job.ResultKind(), res)

		req, err := RequestKindFor(res)
		require.NoError(t, err)
		require.Equal(t, job.RequestKind, req)

		// job kinds aren't in the core registry
		require.True(t, job.RequestKind.IsCustom())
		require.True(t, res.IsCustom())
	}

	_, err := ResultKindFor(6000)
	require.Error(t, err)
	_, err = RequestKindFor(5000)
	require.Error(t, err)
}

func TestJobFor(t *testing.T) {
	job, ok := JobFor(5302)
	require.True(t, ok)
	require.Equal(t, "Nostr Content Search", job.Name)

	job, ok = JobFor(6302)
	require.True(t, ok)
	require.Equal(t, nostr.Kind(5302), job.RequestKind)

	_, ok = JobFor(5555)
	require.False(t, ok)

	_, ok = JobFor(KindJobFeedback)
	require.False(t, ok)

	_, ok = JobFor(nostr.KindTextNote)
	require.False(t, ok)
}
