package picacg

import (
	"time"

	"github.com/kbukum/picacg/page"
)

// Image references a file on one of the media servers.
type Image struct {
	FileServer   string `json:"fileServer"`
	OriginalName string `json:"originalName"`
	Path         string `json:"path"`
}

// Comic is a list entry.
type Comic struct {
	ID         string   `json:"_id"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	PagesCount int      `json:"pagesCount"`
	EpsCount   int      `json:"epsCount"`
	Finished   bool     `json:"finished"`
	Categories []string `json:"categories"`
	Thumb      Image    `json:"thumb"`
	LikesCount int      `json:"likesCount"`
	Tags       []string `json:"tags"`
	TotalLikes int      `json:"totalLikes"`
	TotalViews int      `json:"totalViews"`
}

// Creator is the uploader of a comic.
type Creator struct {
	ID         string   `json:"_id"`
	Gender     string   `json:"gender"`
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Verified   *bool    `json:"verified,omitempty"`
	Exp        int      `json:"exp"`
	Level      int      `json:"level"`
	Characters []string `json:"characters"`
	Avatar     Image    `json:"avatar"`
	Slogan     string   `json:"slogan"`
	Role       string   `json:"role"`
	Character  string   `json:"character"`
}

// ComicInfo is the detail view of a comic.
type ComicInfo struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	PagesCount    int       `json:"pagesCount"`
	EpsCount      int       `json:"epsCount"`
	Finished      bool      `json:"finished"`
	Categories    []string  `json:"categories"`
	Thumb         Image     `json:"thumb"`
	LikesCount    int       `json:"likesCount"`
	Creator       Creator   `json:"_creator"`
	Description   string    `json:"description"`
	ChineseTeam   string    `json:"chineseTeam"`
	Tags          []string  `json:"tags"`
	UpdatedAt     time.Time `json:"updated_at"`
	CreatedAt     string    `json:"created_at"`
	AllowDownload bool      `json:"allowDownload"`
	ViewsCount    int       `json:"viewsCount"`
	IsLiked       bool      `json:"isLiked"`
	IsFavourite   bool      `json:"isFavourite"`
	CommentsCount int       `json:"commentsCount"`
	AllowComment  bool      `json:"allowComment"`
	TotalViews    int       `json:"totalViews"`
	TotalLikes    int       `json:"totalLikes"`
	TotalComments int       `json:"totalComments"`
}

// Episode is a chapter of a comic.
type Episode struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Picture is one page image of an episode.
type Picture struct {
	ID    string `json:"_id"`
	Media Image  `json:"media"`
}

// CommentUser is the author of a comment.
type CommentUser struct {
	ID         string   `json:"_id"`
	Gender     string   `json:"gender"`
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Verified   bool     `json:"verified"`
	Exp        int64    `json:"exp"`
	Level      int64    `json:"level"`
	Characters []string `json:"characters"`
	Avatar     Image    `json:"avatar"`
	Role       string   `json:"role"`
}

// Comment is a comment on a comic or a reply to another comment.
type Comment struct {
	ID            string      `json:"_id"`
	Content       string      `json:"content"`
	User          CommentUser `json:"_user"`
	IsTop         bool        `json:"isTop"`
	Hide          bool        `json:"hide"`
	CreatedAt     string      `json:"created_at"`
	LikesCount    int64       `json:"likesCount"`
	CommentsCount int64       `json:"commentsCount"`
	IsLiked       bool        `json:"isLiked"`
	Comic         string      `json:"_comic"`
	Game          string      `json:"_game"`
	Parent        string      `json:"_parent"`
}

// SearchComic is a search result entry.
type SearchComic struct {
	ID          string   `json:"_id"`
	Author      string   `json:"author"`
	Categories  []string `json:"categories"`
	ChineseTeam string   `json:"chineseTeam"`
	CreatedAt   string   `json:"created_at"`
	Description string   `json:"description"`
	Finished    bool     `json:"finished"`
	LikesCount  int64    `json:"likesCount"`
	Tags        []string `json:"tags"`
	Thumb       Image    `json:"thumb"`
	Title       string   `json:"title"`
	TotalLikes  *int64   `json:"totalLikes,omitempty"`
	TotalViews  *int64   `json:"totalViews,omitempty"`
	UpdatedAt   string   `json:"updated_at"`
}

// Category is an entry of the category index. Web categories link out
// instead of listing comics.
type Category struct {
	ID     string `json:"_id,omitempty"`
	Title  string `json:"title"`
	IsWeb  bool   `json:"isWeb"`
	Active *bool  `json:"active,omitempty"`
	Link   string `json:"link"`
	Thumb  Image  `json:"thumb"`
}

// IsActive reports the active flag, which defaults to true when absent.
func (c Category) IsActive() bool {
	return c.Active == nil || *c.Active
}

// CategoryID pairs a category id with its title.
type CategoryID struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// InitResult is the payload of the startup call.
type InitResult struct {
	Categories  []CategoryID `json:"categories"`
	ImageServer string       `json:"imageServer,omitempty"`
	IsPunched   bool         `json:"isPunched"`
}

// Banner is a promotional entry on the home screen.
type Banner struct {
	ID               string `json:"_id"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Link             string `json:"link"`
	Type             string `json:"type"`
	Thumb            Image  `json:"thumb"`
}

// Announcement is a notice from the operators.
type Announcement struct {
	ID      string `json:"_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Thumb   Image  `json:"thumb"`
}

// Action is the result of a toggle, "like"/"unlike" or "favourite"/"un_favourite".
type Action struct {
	Action string `json:"action"`
}

// Profile is the signed-in user.
type Profile struct {
	ID         string   `json:"_id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Gender     string   `json:"gender"`
	Birthday   string   `json:"birthday"`
	Title      string   `json:"title"`
	Slogan     string   `json:"slogan"`
	Verified   bool     `json:"verified"`
	Exp        int      `json:"exp"`
	Level      int      `json:"level"`
	Characters []string `json:"characters"`
	Avatar     Image    `json:"avatar"`
	IsPunched  bool     `json:"isPunched"`
	CreatedAt  string   `json:"created_at"`
}

// LoginResult is the payload of a successful sign-in.
type LoginResult struct {
	Token string `json:"token"`
}

// Page types of the list endpoints.
type (
	ComicPage        = page.Page[Comic]
	EpisodePage      = page.Page[Episode]
	PicturePage      = page.Page[Picture]
	CommentPage      = page.Page[Comment]
	SearchPage       = page.Page[SearchComic]
	AnnouncementPage = page.Page[Announcement]
)
