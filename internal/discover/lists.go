package discover

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmunix/arrdeck/pkg/api"
)

//go:generate mockgen -source=lists.go -destination=mocks/source.go -package=mocks

// Source is the part of the API client that serves discover lists.
type Source interface {
	Search(ctx context.Context, text string, page int) (*api.DiscoverPage, error)
	SearchMovies(ctx context.Context, text string, page int) (*api.DiscoverPage, error)
	SearchTV(ctx context.Context, text string, page int) (*api.DiscoverPage, error)
	Trending(ctx context.Context, mediaType api.MediaType, page int) (*api.DiscoverPage, error)
	Popular(ctx context.Context, mediaType api.MediaType, page int) (*api.DiscoverPage, error)
	Upcoming(ctx context.Context, mediaType api.MediaType, page int) (*api.DiscoverPage, error)
}

// ErrInvalidList is returned for an unknown list or media type, or a search
// without a query.
var ErrInvalidList = errors.New("invalid discover list")

// List names a discover list.
type List string

const (
	ListTrending List = "trending"
	ListPopular  List = "popular"
	ListUpcoming List = "upcoming"
	ListSearch   List = "search"
)

// Lists are the browsable lists.
var Lists = []List{ListTrending, ListPopular, ListUpcoming}

// Pages returns the PageFunc for a list. For ListSearch query is required
// and an empty mediaType searches movies and series together.
func Pages(src Source, list List, mediaType api.MediaType, query string) (PageFunc, error) {
	if list == ListSearch {
		if query == "" {
			return nil, fmt.Errorf("%w: search needs a query", ErrInvalidList)
		}
		switch mediaType {
		case "":
			return bindText(src.Search, query), nil
		case api.MediaTypeMovie:
			return bindText(src.SearchMovies, query), nil
		case api.MediaTypeSeries:
			return bindText(src.SearchTV, query), nil
		}
		return nil, fmt.Errorf("%w: unknown media type %q", ErrInvalidList, mediaType)
	}

	if mediaType != api.MediaTypeMovie && mediaType != api.MediaTypeSeries {
		return nil, fmt.Errorf("%w: unknown media type %q", ErrInvalidList, mediaType)
	}
	switch list {
	case ListTrending:
		return bindType(src.Trending, mediaType), nil
	case ListPopular:
		return bindType(src.Popular, mediaType), nil
	case ListUpcoming:
		return bindType(src.Upcoming, mediaType), nil
	}
	return nil, fmt.Errorf("%w: unknown list %q", ErrInvalidList, list)
}

func bindText(fn func(context.Context, string, int) (*api.DiscoverPage, error), text string) PageFunc {
	return func(ctx context.Context, page int) (*api.DiscoverPage, error) {
		return fn(ctx, text, page)
	}
}

func bindType(fn func(context.Context, api.MediaType, int) (*api.DiscoverPage, error), mt api.MediaType) PageFunc {
	return func(ctx context.Context, page int) (*api.DiscoverPage, error) {
		return fn(ctx, mt, page)
	}
}
