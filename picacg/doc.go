// Package picacg is a client for the Picacomic REST API.
//
// Every API call goes through one pipeline: the request is signed
// (package signer), the session token is attached when present (package
// session), the request is sent with retries (package httpclient) and the
// {code, message, data} envelope is decoded (package envelope) into typed
// entities or pages (package page).
//
//	client, err := picacg.New(picacg.Config{})
//	if _, err := client.Login(ctx, email, password); err != nil {
//	    return err
//	}
//	comics, err := client.Comics(ctx, picacg.ComicQuery{Sort: picacg.SortNewest, Page: 1})
//
// Every error returned by the client is an *errors.Error carrying a Kind.
package picacg
