package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFirstExecutable_NoneFound(t *testing.T) {
	assert.Empty(t, findFirstExecutable("definitely-not-a-browser-binary"))
}

func TestAllocatorOptions_IncludesExecPath(t *testing.T) {
	without := NewFetcher("", time.Second, nil)
	without.execPath = ""
	with := NewFetcher("/usr/bin/chromium", time.Second, nil)

	assert.Len(t, with.allocatorOptions(), len(without.allocatorOptions())+1, "expected an extra ExecPath option")
}

func TestFetch_RendersPage(t *testing.T) {
	f := NewFetcher("", 20*time.Second, nil)
	if f.execPath == "" {
		t.Skip("no headless browser available")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><div id="x"></div><script>document.getElementById("x").innerHTML='<a href="/2024/01/02/rendered-story">s</a>'</script></body></html>`))
	}))
	defer server.Close()

	page, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, page.HTML, "rendered-story")
}
