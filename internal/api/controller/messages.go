package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/service/messages"
)

type sendMessageRequest struct {
	Company string `json:"company" validate:"required"`
	Sender  string `json:"sender"`
	Text    string `json:"text" validate:"required"`
}

// SendMessage appends a message to the company channel. The sender defaults to the company.
func (c *Controller) SendMessage(ctx echo.Context) error {
	var req sendMessageRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if req.Sender == "" {
		req.Sender = req.Company
	}

	res, err := c.portal.SendMessage(ctx.Request().Context(), messages.SendInput{
		Company: req.Company,
		Sender:  req.Sender,
		Text:    req.Text,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) ListAllMessages(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.portal.AllMessages())
}

func (c *Controller) ListCompanyMessages(ctx echo.Context) error {
	seq, err := c.portal.Messages(companyParam(ctx))
	if err != nil {
		return err
	}

	out := make([]domain.Message, 0, 16)
	for msg := range seq {
		out = append(out, msg)
	}

	return ctx.JSON(http.StatusOK, out)
}
