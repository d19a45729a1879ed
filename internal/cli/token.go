package cli

import (
	"errors"
	"fmt"
	"time"
)

type TokenCmd struct {
	Subject string `arg:"" help:"Who the token is issued to."`
}

func (c *TokenCmd) Run(ctx *Context) error {
	if ctx.JWT == nil {
		return errors.New("AUTH_JWT_SECRET is not set")
	}
	token, expiresAt, err := ctx.JWT.GenerateAccessToken(c.Subject)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, token)
	fmt.Fprintln(ctx.Out, mutedStyle.Render("expires "+time.Unix(expiresAt, 0).UTC().Format(time.RFC3339)))
	return nil
}
