package picacg

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kbukum/picacg/envelope"
	"github.com/kbukum/picacg/validation"
)

// RandomComics returns a random selection of comics.
func (c *Client) RandomComics(ctx context.Context) ([]Comic, error) {
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          "/comics/random",
		NoTextMessage: "random api result expected text response",
	}, envelope.Field[[]Comic]("data.comics"))
}

// ComicQuery filters the comic list. Empty filters are omitted.
type ComicQuery struct {
	Category    string
	Tag         string
	CreatorID   string
	ChineseTeam string
	Sort        Sort
	Page        int
}

// Comics lists comics matching q.
func (c *Client) Comics(ctx context.Context, q ComicQuery) (ComicPage, error) {
	sort := q.Sort.OrDefault()
	if err := checkListParams(sort, q.Page); err != nil {
		return ComicPage{}, err
	}
	path := query{}.
		addIf("c", q.Category).
		addIf("t", q.Tag).
		addIf("ca", q.CreatorID).
		addIf("ct", q.ChineseTeam).
		add("s", sort.String()).
		add("page", strconv.Itoa(q.Page)).
		path("/comics")
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          path,
		NoTextMessage: "comic page api result expected text response",
	}, envelope.Page[Comic]("data.comics"))
}

// ComicInfo returns the detail view of a comic.
func (c *Client) ComicInfo(ctx context.Context, comicID string) (ComicInfo, error) {
	if err := validation.Required("comic_id", comicID); err != nil {
		return ComicInfo{}, err
	}
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          "/comics/" + comicID,
		NoTextMessage: "comic info api result expected text response",
	}, envelope.Field[ComicInfo]("data.comic"))
}

// Episodes lists the chapters of a comic.
func (c *Client) Episodes(ctx context.Context, comicID string, pageNum int) (EpisodePage, error) {
	if err := validation.New().Required("comic_id", comicID).Min("page", pageNum, 1).Err(); err != nil {
		return EpisodePage{}, err
	}
	path := query{}.add("page", strconv.Itoa(pageNum)).path("/comics/" + comicID + "/eps")
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          path,
		NoTextMessage: "comic eps api result expected text response",
	}, envelope.Page[Episode]("data.eps"))
}

// Pictures lists the page images of the episode with the given order.
func (c *Client) Pictures(ctx context.Context, comicID string, order, pageNum int) (PicturePage, error) {
	if err := validation.New().
		Required("comic_id", comicID).
		Min("order", order, 1).
		Min("page", pageNum, 1).
		Err(); err != nil {
		return PicturePage{}, err
	}
	base := "/comics/" + comicID + "/order/" + strconv.Itoa(order) + "/pages"
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          query{}.add("page", strconv.Itoa(pageNum)).path(base),
		NoTextMessage: "comic ep pictures api result expected text response",
	}, envelope.Page[Picture]("data.pages"))
}

// ToggleLike likes or unlikes a comic.
func (c *Client) ToggleLike(ctx context.Context, comicID string) (Action, error) {
	return c.toggle(ctx, comicID, "like")
}

// ToggleFavourite adds or removes a comic from the favourites.
func (c *Client) ToggleFavourite(ctx context.Context, comicID string) (Action, error) {
	return c.toggle(ctx, comicID, "favourite")
}

func (c *Client) toggle(ctx context.Context, comicID, what string) (Action, error) {
	if err := validation.Required("comic_id", comicID); err != nil {
		return Action{}, err
	}
	return Call(ctx, c, Endpoint{
		Method:        http.MethodPost,
		Path:          "/comics/" + comicID + "/" + what,
		Body:          struct{}{},
		NoTextMessage: "switch " + what + " api result expected text response",
	}, envelope.Field[Action]("data"))
}

// Comments lists the comments of a comic.
func (c *Client) Comments(ctx context.Context, comicID string, pageNum int) (CommentPage, error) {
	if err := validation.New().Required("comic_id", comicID).Min("page", pageNum, 1).Err(); err != nil {
		return CommentPage{}, err
	}
	path := query{}.add("page", strconv.Itoa(pageNum)).path("/comics/" + comicID + "/comments")
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          path,
		NoTextMessage: "comic comments api result expected text response",
	}, envelope.Page[Comment]("data.comments"))
}

// PostComment comments on a comic.
func (c *Client) PostComment(ctx context.Context, comicID, content string) error {
	return c.comment(ctx, "/comics/"+comicID+"/comments", "comic_id", comicID, content,
		"post comment api result expected text response")
}

// ReplyComment replies to a comment.
func (c *Client) ReplyComment(ctx context.Context, commentID, content string) error {
	return c.comment(ctx, "/comments/"+commentID, "comment_id", commentID, content,
		"post child comment api result expected text response")
}

func (c *Client) comment(ctx context.Context, path, idField, id, content, noText string) error {
	if err := validation.New().Required(idField, id).Required("content", content).Err(); err != nil {
		return err
	}
	_, err := Call(ctx, c, Endpoint{
		Method:        http.MethodPost,
		Path:          path,
		Body:          map[string]string{"content": content},
		NoTextMessage: noText,
	}, envelope.Ignore)
	return err
}

// SearchQuery is an advanced search.
type SearchQuery struct {
	Keyword    string
	Sort       Sort
	Page       int
	Categories []string
}

// Search runs an advanced search.
func (c *Client) Search(ctx context.Context, q SearchQuery) (SearchPage, error) {
	sort := q.Sort.OrDefault()
	if err := validation.New().
		Required("keyword", q.Keyword).
		Custom(sort.Valid(), "sort", "must be one of: ua dd da ld vd").
		Min("page", q.Page, 1).
		Err(); err != nil {
		return SearchPage{}, err
	}
	categories := q.Categories
	if categories == nil {
		categories = []string{}
	}
	return Call(ctx, c, Endpoint{
		Method: http.MethodPost,
		Path:   query{}.add("page", strconv.Itoa(q.Page)).path("/comics/advanced-search"),
		Body: map[string]any{
			"keyword":    q.Keyword,
			"sort":       sort.String(),
			"categories": categories,
		},
		NoTextMessage: "comic search api result expected text response",
	}, envelope.Page[SearchComic]("data.comics"))
}

// Categories returns the category index.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          "/categories",
		NoTextMessage: "category api result expected text response",
	}, envelope.Field[[]Category]("data.categories"))
}

// Init fetches the startup data, which includes the category ids.
func (c *Client) Init(ctx context.Context) (InitResult, error) {
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          query{}.add("platform", "android").path("/init"),
		NoTextMessage: "init api result expected text response",
	}, envelope.Field[InitResult]("data"))
}

// Keywords returns the trending search keywords.
func (c *Client) Keywords(ctx context.Context) ([]string, error) {
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          "/keywords",
		NoTextMessage: "comic keywords api result expected text response",
	}, envelope.Field[[]string]("data.keywords"))
}
