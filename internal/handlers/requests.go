package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// SelectRequest is the form posted when a link in the mobile menu is tapped.
type SelectRequest struct {
	Page   string `param:"page" validate:"required"`
	Anchor string `form:"anchor" validate:"required,oneof=storitve cenik mnenja o-nas kontakt"`
}

// ViewportMessage is a frame sent by the page over its WebSocket.
type ViewportMessage struct {
	Type   string  `json:"type"`
	Offset float64 `json:"offset"`
	Seq    uint64  `json:"seq"`
}

// MessageTypeScroll reports the vertical scroll offset of the viewport.
const MessageTypeScroll = "scroll"
