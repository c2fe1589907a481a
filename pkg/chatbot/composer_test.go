package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mentorlink-be/internal/constant"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/pkg/llm"
	"mentorlink-be/pkg/locale"
	"mentorlink-be/pkg/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	configured bool
	text       string
	err        error

	calls   int
	lastReq llm.GenerationRequest
	lastCtx context.Context
}

func (f *fakeGenerator) Configured() bool { return f.configured }

func (f *fakeGenerator) Generate(ctx context.Context, req llm.GenerationRequest) (string, error) {
	f.calls++
	f.lastReq = req
	f.lastCtx = ctx
	return f.text, f.err
}

type fakeSearcher struct {
	results []search.Record
	err     error
	calls   int
}

func (f *fakeSearcher) Search(ctx context.Context, query string, loc locale.Locale) ([]search.Record, error) {
	f.calls++
	return f.results, f.err
}

func sampleRecords() []search.Record {
	return []search.Record{
		{Kind: search.KindMentor, Id: "m1", Title: "Kim Minji", Description: "Visa consultant", Url: "/en/mentors/m1"},
		{Kind: search.KindStudyInfo, Id: "s1", Title: "D-2 visa guide", Description: "The D-2 visa is for degree students.", Url: "/en/study-in-korea#visa"},
	}
}

func newTestComposer(s Searcher, g llm.Generator) *Composer {
	return NewComposer(s, g, logger.NewNopLogger(), DefaultOptions())
}

func TestComposeUnconfigured(t *testing.T) {
	cases := map[locale.Locale]string{
		locale.Korean:    constant.ChatUnconfiguredMessageKR,
		locale.English:   constant.ChatUnconfiguredMessageEN,
		locale.Mongolian: constant.ChatUnconfiguredMessageMN,
	}

	for loc, want := range cases {
		t.Run(loc.String(), func(t *testing.T) {
			gen := &fakeGenerator{configured: false}
			searcher := &fakeSearcher{results: sampleRecords()}

			reply, err := newTestComposer(searcher, gen).Compose(context.Background(), "visa", loc)

			require.NoError(t, err)
			assert.Equal(t, OutcomeUnconfigured, reply.Outcome)
			assert.Equal(t, want, reply.Text)
			assert.Empty(t, reply.Links)
			assert.Equal(t, 0, gen.calls)
			assert.Equal(t, 0, searcher.calls)
		})
	}
}

func TestComposeUnconfiguredNamesProvider(t *testing.T) {
	cases := []struct {
		provider string
		loc      locale.Locale
		want     string
	}{
		{"openai", locale.English, constant.ChatUnconfiguredMessageEN},
		{"gemini", locale.English, constant.ChatUnconfiguredGenericMessageEN},
		{"ollama", locale.Korean, constant.ChatUnconfiguredGenericMessageKR},
		{"gemini", locale.Mongolian, constant.ChatUnconfiguredGenericMessageMN},
	}

	for _, tc := range cases {
		t.Run(tc.provider+"/"+tc.loc.String(), func(t *testing.T) {
			gen := llm.Unconfigured{Provider: tc.provider, Reason: "missing"}

			reply, err := newTestComposer(&fakeSearcher{}, gen).Compose(context.Background(), "visa", tc.loc)

			require.NoError(t, err)
			assert.Equal(t, OutcomeUnconfigured, reply.Outcome)
			assert.Equal(t, tc.want, reply.Text)
		})
	}
}

func TestComposeGenerationFailure(t *testing.T) {
	cases := map[locale.Locale]string{
		locale.Korean:    constant.ChatTemporaryErrorMessageKR,
		locale.English:   constant.ChatTemporaryErrorMessageEN,
		locale.Mongolian: constant.ChatTemporaryErrorMessageMN,
	}

	for loc, want := range cases {
		t.Run(loc.String(), func(t *testing.T) {
			gen := &fakeGenerator{configured: true, err: llm.NewGenerationError("fake", errors.New("503"))}

			reply, err := newTestComposer(&fakeSearcher{results: sampleRecords()}, gen).Compose(context.Background(), "visa", loc)

			require.NoError(t, err)
			assert.Equal(t, OutcomeFailed, reply.Outcome)
			assert.Equal(t, want, reply.Text)
			assert.Empty(t, reply.Links)
			assert.Equal(t, 1, gen.calls)
		})
	}
}

func TestComposeBlankTextIsFailure(t *testing.T) {
	gen := &fakeGenerator{configured: true, text: "  \n"}

	reply, err := newTestComposer(&fakeSearcher{results: sampleRecords()}, gen).Compose(context.Background(), "visa", locale.English)

	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, reply.Outcome)
	assert.Equal(t, constant.ChatTemporaryErrorMessageEN, reply.Text)
	assert.Nil(t, reply.Links)
}

func TestComposeAnswerCarriesLinks(t *testing.T) {
	records := sampleRecords()
	gen := &fakeGenerator{configured: true, text: "Try a visa mentor."}

	reply, err := newTestComposer(&fakeSearcher{results: records}, gen).Compose(context.Background(), "visa", locale.English)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAnswered, reply.Outcome)
	assert.Equal(t, "Try a visa mentor.", reply.Text)
	require.Len(t, reply.Links, len(records))
	for i, r := range records {
		assert.Equal(t, r.Id, reply.Links[i].Id)
		assert.Equal(t, r.Url, reply.Links[i].Url)
	}
}

func TestComposeWithoutResultsOmitsLinks(t *testing.T) {
	gen := &fakeGenerator{configured: true, text: "Hello!"}

	reply, err := newTestComposer(&fakeSearcher{results: []search.Record{}}, gen).Compose(context.Background(), "hi", locale.Korean)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAnswered, reply.Outcome)
	assert.Nil(t, reply.Links)
	assert.Equal(t, "hi", gen.lastReq.UserMessage)
}

func TestComposeRequestShape(t *testing.T) {
	gen := &fakeGenerator{configured: true, text: "ok"}

	_, err := newTestComposer(&fakeSearcher{results: sampleRecords()}, gen).Compose(context.Background(), "visa help", locale.Mongolian)
	require.NoError(t, err)

	req := gen.lastReq
	assert.Equal(t, constant.ChatDefaultMaxOutputTokens, req.MaxOutputTokens)
	assert.InDelta(t, 0.7, req.Temperature, 0.0001)
	assert.Contains(t, req.SystemInstruction, "MentorLink")
	assert.Contains(t, req.SystemInstruction, "Current language: Mongolian")
	for _, path := range []string{"/mentors", "/lectures", "/community", "/freelancers", "/study-in-korea"} {
		assert.Contains(t, req.SystemInstruction, path)
	}
	assert.Equal(t,
		"visa help\n\nRelevant content found:\n- Kim Minji: Visa consultant\n- D-2 visa guide: The D-2 visa is for degree students.",
		req.UserMessage)
}

func TestComposeSearchErrorIsReturned(t *testing.T) {
	gen := &fakeGenerator{configured: true, text: "ok"}
	storeErr := errors.New("database is down")

	reply, err := newTestComposer(&fakeSearcher{err: storeErr}, gen).Compose(context.Background(), "visa", locale.English)

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, reply)
	assert.Equal(t, 0, gen.calls)
}

func TestComposeAppliesTimeout(t *testing.T) {
	gen := &fakeGenerator{configured: true, text: "ok"}
	opts := DefaultOptions()
	opts.Timeout = time.Minute

	_, err := NewComposer(&fakeSearcher{}, gen, logger.NewNopLogger(), opts).Compose(context.Background(), "hi", locale.English)
	require.NoError(t, err)

	deadline, ok := gen.lastCtx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestFallbackMessagesDiffer(t *testing.T) {
	for _, loc := range locale.All {
		assert.NotEqual(t, UnconfiguredMessage(loc), TemporaryErrorMessage(loc))
		assert.NotContains(t, UnconfiguredMessageFor(loc, "gemini"), "OPENAI_API_KEY")
	}
}

func TestFallbackDefaultsToKorean(t *testing.T) {
	assert.Equal(t, constant.ChatUnconfiguredMessageKR, UnconfiguredMessage(locale.Locale("fr")))
	assert.Equal(t, constant.ChatTemporaryErrorMessageKR, TemporaryErrorMessage(locale.Locale("")))
}

func TestUserPayloadPassthrough(t *testing.T) {
	assert.Equal(t, "plain", UserPayload("plain", nil))
	assert.True(t, strings.HasPrefix(UserPayload("q", sampleRecords()), "q\n\n"))
}
