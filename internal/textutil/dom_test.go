package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epforgpl/senat-cli/internal/scrapeerr"
)

const domFixture = `<html><body>
<div class="one">  single&nbsp;entry  </div>
<ul><li>a</li><li>b</li><li>c</li></ul>
<a class="link" href=" /x ">x</a>
</body></html>`

func TestDOMHelpers(t *testing.T) {
	doc, err := ParseHTML(domFixture)
	require.NoError(t, err)

	one, err := ExactlyOne(doc.Selection, "div.one")
	require.NoError(t, err)
	assert.Equal(t, "single entry", Text(one))

	_, err = ExactlyOne(doc.Selection, "li")
	var ee *scrapeerr.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Contains(t, ee.Detail, "got 3")

	_, err = ExactlyOne(doc.Selection, "table")
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "table", ee.Field)

	items, err := AtLeast(doc.Selection, "li", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, items.Length())

	_, err = AtLeast(doc.Selection, "li", 4)
	require.Error(t, err)

	assert.Equal(t, "b", Text(Nth(doc.Selection, "li", 1)))
	assert.Nil(t, Nth(doc.Selection, "li", 5))
	assert.Nil(t, Nth(nil, "li", 0))

	assert.Equal(t, "/x", Attr(Nth(doc.Selection, "a.link", 0), "href"))
	assert.Equal(t, "", Attr(nil, "href"))
}
