package picacg

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kbukum/picacg/envelope"
	"github.com/kbukum/picacg/validation"
)

// Login signs in and stores the returned token in the session.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if err := validation.New().
		Required("email", email).
		Required("password", password).
		Err(); err != nil {
		return LoginResult{}, err
	}

	res, err := Call(ctx, c, Endpoint{
		Method:        http.MethodPost,
		Path:          "/auth/sign-in",
		Body:          map[string]string{"email": email, "password": password},
		NoTextMessage: "login api result expected text response",
	}, envelope.Field[LoginResult]("data"))
	if err != nil {
		return LoginResult{}, err
	}
	c.session.Set(res.Token)
	c.log.Info("signed in")
	return res, nil
}

// RegisterRequest is the sign-up form. Gender is m, f or bot.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,notblank"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required,notblank"`
	Birthday  string `json:"birthday" validate:"required"`
	Gender    string `json:"gender" validate:"required,oneof=m f bot"`
	Answer1   string `json:"answer1" validate:"required"`
	Answer2   string `json:"answer2" validate:"required"`
	Answer3   string `json:"answer3" validate:"required"`
	Question1 string `json:"question1" validate:"required"`
	Question2 string `json:"question2" validate:"required"`
	Question3 string `json:"question3" validate:"required"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	if err := validation.Validate(req); err != nil {
		return err
	}
	_, err := Call(ctx, c, Endpoint{
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Body:          req,
		NoTextMessage: "register api result expected text response",
	}, envelope.Ignore)
	return err
}

// Profile returns the signed-in user.
func (c *Client) Profile(ctx context.Context) (Profile, error) {
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          "/users/profile",
		NoTextMessage: "profile api result expected text response",
	}, envelope.Field[Profile]("data.user"))
}

// PunchIn records the daily check-in.
func (c *Client) PunchIn(ctx context.Context) error {
	_, err := Call(ctx, c, Endpoint{
		Method:        http.MethodPost,
		Path:          "/users/punch-in",
		Body:          struct{}{},
		NoTextMessage: "punch-in api result expected text response",
	}, envelope.Ignore)
	return err
}

// Favourites lists the comics the user marked as favourite.
func (c *Client) Favourites(ctx context.Context, sort Sort, pageNum int) (ComicPage, error) {
	sort = sort.OrDefault()
	if err := checkListParams(sort, pageNum); err != nil {
		return ComicPage{}, err
	}
	path := query{}.
		add("s", sort.String()).
		add("page", strconv.Itoa(pageNum)).
		path("/users/favourite")
	return Call(ctx, c, Endpoint{
		Method:        http.MethodGet,
		Path:          path,
		NoTextMessage: "comic favourite api result expected text response",
	}, envelope.Page[Comic]("data.comics"))
}

func checkListParams(sort Sort, pageNum int) error {
	return validation.New().
		Custom(sort.Valid(), "sort", "must be one of: ua dd da ld vd").
		Min("page", pageNum, 1).
		Err()
}
