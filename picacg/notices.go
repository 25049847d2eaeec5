package picacg

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kbukum/picacg/envelope"
	"github.com/kbukum/picacg/validation"
)

// Banners returns the home screen banners.
func (c *Client) Banners(ctx context.Context) ([]Banner, error) {
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          "/banners",
		NoTextMessage: "Response body is not text",
	}, envelope.Field[[]Banner]("data.banners"))
}

// Announcements lists operator notices.
func (c *Client) Announcements(ctx context.Context, pageNum int) (AnnouncementPage, error) {
	if err := validation.New().Min("page", pageNum, 1).Err(); err != nil {
		return AnnouncementPage{}, err
	}
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          query{}.add("page", strconv.Itoa(pageNum)).path("/announcements"),
		NoTextMessage: "notice announcements api result expected text response",
	}, envelope.Page[Announcement]("data.announcements"))
}
