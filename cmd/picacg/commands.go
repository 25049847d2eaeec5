package main

import (
	"context"
	"time"

	"github.com/spf13/pflag"

	"github.com/kbukum/picacg/logger"
	"github.com/kbukum/picacg/picacg"
)

func cmdLogin(ctx context.Context, a *app, args []string) error {
	fs := subFlags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := a.client.Login(ctx, *email, *password); err != nil {
		return err
	}
	if err := a.persist(ctx); err != nil {
		return err
	}
	a.log.Info("token saved", logger.Fields(logger.FieldPath, a.store.Path()))
	return writeJSON(a.out, map[string]bool{"authenticated": true})
}

func cmdLogout(ctx context.Context, a *app, _ []string) error {
	a.client.Logout()
	return a.persist(ctx)
}

type sessionStatus struct {
	Authenticated bool       `json:"authenticated"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Expired       bool       `json:"expired"`
}

func cmdStatus(_ context.Context, a *app, _ []string) error {
	sess := a.client.Session()
	st := sessionStatus{Authenticated: sess.Authenticated()}
	if exp, ok := sess.ExpiresAt(); ok {
		st.ExpiresAt = &exp
		st.Expired = sess.Expired(time.Now())
	}
	return writeJSON(a.out, st)
}

func cmdProfile(ctx context.Context, a *app, _ []string) error {
	p, err := a.client.Profile(ctx)
	if err != nil {
		return err
	}
	return writeJSON(a.out, p)
}

func cmdCategories(ctx context.Context, a *app, _ []string) error {
	cats, err := a.client.Categories(ctx)
	if err != nil {
		return err
	}
	return writeJSON(a.out, cats)
}

func cmdComics(ctx context.Context, a *app, args []string) error {
	fs := subFlags("comics")
	category := fs.StringP("category", "c", "", "category title")
	tag := fs.StringP("tag", "t", "", "tag")
	sortFlag := fs.StringP("sort", "s", "", "sort: ua, dd, da, ld, vd")
	pageNum := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	sort, err := picacg.ParseSort(*sortFlag)
	if err != nil {
		return err
	}
	p, err := a.client.Comics(ctx, picacg.ComicQuery{
		Category: *category,
		Tag:      *tag,
		Sort:     sort,
		Page:     *pageNum,
	})
	if err != nil {
		return err
	}
	return writeJSON(a.out, p)
}

func cmdInfo(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return pflag.ErrHelp
	}
	info, err := a.client.ComicInfo(ctx, args[0])
	if err != nil {
		return err
	}
	return writeJSON(a.out, info)
}

func cmdEpisodes(ctx context.Context, a *app, args []string) error {
	fs := subFlags("eps")
	pageNum := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return pflag.ErrHelp
	}
	p, err := a.client.Episodes(ctx, fs.Arg(0), *pageNum)
	if err != nil {
		return err
	}
	return writeJSON(a.out, p)
}

func cmdSearch(ctx context.Context, a *app, args []string) error {
	fs := subFlags("search")
	sortFlag := fs.StringP("sort", "s", "", "sort: ua, dd, da, ld, vd")
	pageNum := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return pflag.ErrHelp
	}
	sort, err := picacg.ParseSort(*sortFlag)
	if err != nil {
		return err
	}
	p, err := a.client.Search(ctx, picacg.SearchQuery{Keyword: fs.Arg(0), Sort: sort, Page: *pageNum})
	if err != nil {
		return err
	}
	return writeJSON(a.out, p)
}
