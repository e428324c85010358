package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<!DOCTYPE html>
<html>
<head><title>Job</title><style>body { color: red }</style></head>
<body>
<nav><ul><li>Home</li><li>Jobs</li></ul></nav>
<h1>Senior Backend Engineer</h1>
<p>Required: Python, AWS, and PostgreSQL experience.</p>
<ul><li>Build microservices</li><li>Ship weekly</li></ul>
<script>trackPageView()</script>
<footer><p>Copyright Initech</p></footer>
</body>
</html>`

func TestJobPosting(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer srv.Close()

	result, err := JobPosting(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, srv.URL, result.URL)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, postingHTML, result.HTML)
	assert.Equal(t, DefaultUserAgent, gotUserAgent)

	assert.Contains(t, result.Text, "Senior Backend Engineer")
	assert.Contains(t, result.Text, "Required: Python, AWS, and PostgreSQL experience.")
	assert.Contains(t, result.Text, "Build microservices")
	assert.NotContains(t, result.Text, "trackPageView")
	assert.NotContains(t, result.Text, "color: red")
}

func TestJobPosting_CustomUserAgent(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<p>hi</p>"))
	}))
	defer srv.Close()

	opts := DefaultOptions()
	opts.UserAgent = "test-agent/1.0"
	_, err := JobPosting(context.Background(), srv.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, "test-agent/1.0", gotUserAgent)
}

func TestJobPosting_InvalidURL(t *testing.T) {
	for _, bad := range []string{"", "not a url", "relative/path", "://missing"} {
		_, err := JobPosting(context.Background(), bad, nil)
		require.Error(t, err, "url %q", bad)

		var fetchErr *Error
		require.True(t, errors.As(err, &fetchErr), "url %q", bad)
		assert.Equal(t, bad, fetchErr.URL)
	}
}

func TestJobPosting_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobPosting(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobPosting_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := JobPosting(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Error(t, fetchErr.Cause)
}

func TestJobPosting_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := JobPosting(ctx, srv.URL, nil)
	assert.Error(t, err)
}

func TestHTMLToText_LeafNodesOnly(t *testing.T) {
	text, err := HTMLToText(`<div><div><p>inner text</p></div></div>`)
	require.NoError(t, err)

	// Container divs must not duplicate their children's text.
	assert.Equal(t, "inner text", text)
}

func TestHTMLToText_PlainTextFallback(t *testing.T) {
	text, err := HTMLToText(`just plain words`)
	require.NoError(t, err)
	assert.Equal(t, "just plain words", text)
}

func TestShouldUseBrowser(t *testing.T) {
	long := make([]byte, MinContentLength+1)
	for i := range long {
		long[i] = 'x'
	}

	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("short stub"))
	assert.False(t, ShouldUseBrowser(string(long)))
}
