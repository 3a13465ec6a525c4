package lyrics

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const songPage = `<html><body>
<div class="title-content">
  <h1>Garota de Ipanema</h1>
  <h2><a href="/tom-jobim/">Tom Jobim</a></h2>
</div>
<div class="lyric-original">
  <p>Olha que coisa mais linda<br>Mais cheia de graça</p>
  <p>É ela, menina<br>Que vem e que passa</p>
</div>
</body></html>`

func TestParseSongPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(songPage))
	require.NoError(t, err)

	got, err := parseSongPage(doc.Selection)
	require.NoError(t, err)

	assert.Equal(t, "Garota de Ipanema", got.Title)
	assert.Equal(t, "Tom Jobim", got.Artist)
	assert.Contains(t, got.Text, "Olha que coisa mais linda\nMais cheia de graça")
	assert.Contains(t, got.Text, "\n\nÉ ela, menina")
}

func TestParseSongPageWithoutLyricsBlock(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><h1>x</h1></body></html>"))
	require.NoError(t, err)

	_, err = parseSongPage(doc.Selection)
	assert.ErrorIs(t, err, ErrNoLyrics)
}

func TestSplitChunksShortTextIsSingle(t *testing.T) {
	chunks := SplitChunks("short", 100)
	assert.Equal(t, []string{"short"}, chunks)
}

func TestSplitChunksPrefersVerseBoundaries(t *testing.T) {
	text := strings.Repeat("a", 60) + "\n\n" + strings.Repeat("b", 60)
	chunks := SplitChunks(text, 100)

	require.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 60), chunks[0])
	assert.Equal(t, strings.Repeat("b", 60), chunks[1])
}

func TestSplitChunksHardCutsOversizedVerse(t *testing.T) {
	text := strings.Repeat("x", 250)
	chunks := SplitChunks(text, 100)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 100)
	assert.Len(t, chunks[1], 100)
	assert.Len(t, chunks[2], 50)
}
