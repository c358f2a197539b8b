package faceting

import "errors"

var ErrFetchFacets = errors.New("error fetching facet values from database")
