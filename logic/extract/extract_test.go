package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedExtension(t *testing.T) {
	assert.True(t, AllowedExtension("contract.pdf"))
	assert.True(t, AllowedExtension("CONTRACT.PDF"))
	assert.True(t, AllowedExtension("notes.txt"))
	assert.True(t, AllowedExtension("agreement.docx"))
	assert.True(t, AllowedExtension("agreement.doc"))

	assert.False(t, AllowedExtension("image.png"))
	assert.False(t, AllowedExtension("script.sh"))
	assert.False(t, AllowedExtension("noextension"))
}

func TestMimeType(t *testing.T) {
	assert.Equal(t, "application/pdf", MimeType("a.pdf"))
	assert.Equal(t, "application/msword", MimeType("a.doc"))
	assert.Equal(t, "text/plain", MimeType("a.txt"))
}

func TestTextPlainFile(t *testing.T) {
	content, err := Text(context.Background(), strings.NewReader("hello legal world"), "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello legal world", content)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 5, WordCount("This is a test document."))
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t "))
	assert.Equal(t, 3, WordCount("  spaced \t out\nwords  "))
}
