package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuotedComma(t *testing.T) {
	rows := Parse("a,b,d\n1,\"2,3\",4")

	assert.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0]["a"])
	assert.Equal(t, "2,3", rows[0]["b"])
	assert.Equal(t, "4", rows[0]["d"])
}

func TestParseDropsRaggedRows(t *testing.T) {
	raw := "title,link,data_added\n" +
		"Accountant,https://example.com/1,05/03/24\n" +
		"broken,row\n" +
		"Controller,https://example.com/2,06/03/24\n"

	rows := Parse(raw)

	assert.Len(t, rows, 2)
	assert.Equal(t, "Accountant", rows[0]["title"])
	assert.Equal(t, "Controller", rows[1]["title"])
}

func TestParseSkipsBlankLines(t *testing.T) {
	raw := "a,b\n\n1,2\n   \n3,4\n\n"

	rows := Parse(raw)

	assert.Len(t, rows, 2)
	assert.Equal(t, "3", rows[1]["a"])
}

func TestParseStripsHeaderQuotes(t *testing.T) {
	rows := Parse("\"title\", \"link\"\nx,y")

	assert.Len(t, rows, 1)
	assert.Equal(t, "x", rows[0]["title"])
	assert.Equal(t, "y", rows[0]["link"])
}

func TestParsePreservesRowOrder(t *testing.T) {
	raw := "n\n1\n2\n3"

	rows := Parse(raw)

	assert.Len(t, rows, 3)
	for i, want := range []string{"1", "2", "3"} {
		assert.Equal(t, want, rows[i]["n"])
	}
}

func TestParseEmptyInput(t *testing.T) {
	assert.Nil(t, Parse(""))
	assert.Nil(t, Parse("   \n  \n"))
}

func TestParseHeaderOnly(t *testing.T) {
	assert.Empty(t, Parse("a,b,c"))
}

func TestParseTrimsValues(t *testing.T) {
	rows := Parse("a,b\n  x  ,  y\t")

	assert.Equal(t, "x", rows[0]["a"])
	assert.Equal(t, "y", rows[0]["b"])
}
