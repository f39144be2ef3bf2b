package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `
<html><body>
<div class="product-grid">
  <div class="product-tile">
    <a class="js-equalized-name" data-productid="629108015015" href="https://www.sqdc.ca/en-CA/p-tangerine-dream/629108015015-P">
      Tangerine Dream
    </a>
  </div>
  <div class="product-tile">
    <a class="js-equalized-name" data-productid="688083002014" href="https://www.sqdc.ca/en-CA/p-blue-dream/688083002014-P">Blue Dream</a>
  </div>
  <div class="product-tile">
    <a class="js-equalized-name" href="https://www.sqdc.ca/en-CA/p-no-id">No Identifier</a>
  </div>
  <a data-productid="000000000000" href="https://example.com">Wrong class</a>
</div>
<ul class="pagination">
  <li class="page-item active"><a class="page-link" href="#">1</a></li>
  <li class="page-item next"><a class="page-link" href="#">Next</a></li>
</ul>
</body></html>`

const lastPage = `
<html><body>
<ul class="pagination">
  <li class="page-item active"><a class="page-link" href="#">3</a></li>
  <li class="page-item next disabled"><a class="page-link" href="#">Next</a></li>
</ul>
</body></html>`

func TestParseListing(t *testing.T) {
	products, err := ParseListing(listingPage)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "629108015015", products[0].SKU)
	assert.Equal(t, "Tangerine Dream", products[0].Name)
	assert.Equal(t, "https://www.sqdc.ca/en-CA/p-tangerine-dream/629108015015-P", products[0].URL)

	assert.Equal(t, "688083002014", products[1].SKU)
	assert.Equal(t, "Blue Dream", products[1].Name)
}

func TestParseListingEmpty(t *testing.T) {
	products, err := ParseListing("<html><body></body></html>")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestNextPageDisabled(t *testing.T) {
	disabled, err := NextPageDisabled(listingPage)
	require.NoError(t, err)
	assert.False(t, disabled)

	disabled, err = NextPageDisabled(lastPage)
	require.NoError(t, err)
	assert.True(t, disabled)

	// No pagination control at all counts as the last page.
	disabled, err = NextPageDisabled("<html><body></body></html>")
	require.NoError(t, err)
	assert.True(t, disabled)
}
