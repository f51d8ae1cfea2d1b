package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/hlabs/hlabs-web/internal/terminal"
	"github.com/hlabs/hlabs-web/internal/ui"
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

// StateRequest is the composer state posted by the language and view
// toggles. Both fields are required so a fragment never guesses state.
type StateRequest struct {
	Lang string `form:"lang" query:"lang" validate:"required,oneof=cn en"`
	View string `form:"view" query:"view" validate:"required,oneof=landing terminal"`
}

// Root converts a validated request into composer state.
func (r StateRequest) Root() (ui.Root, error) {
	lang, err := content.ParseLanguage(r.Lang)
	if err != nil {
		return ui.Root{}, err
	}
	view, err := ui.ParseViewMode(r.View)
	if err != nil {
		return ui.Root{}, err
	}
	return ui.NewRoot().SetLanguage(lang).SetViewMode(view), nil
}

// PanelRequest selects one Terminal OS page.
type PanelRequest struct {
	Page string `param:"page" validate:"required"`
}

// Terminal converts the request into Terminal OS state.
func (r PanelRequest) Terminal() (ui.Terminal, error) {
	p, err := terminal.ParsePage(r.Page)
	if err != nil {
		return ui.Terminal{}, err
	}
	return ui.NewTerminal().SetActivePage(p), nil
}

// LanguageRequest addresses a content bundle by language. BCP 47 tags such as
// zh-CN are accepted alongside the short codes.
type LanguageRequest struct {
	Lang string `param:"lang" validate:"required,max=35"`
}

// Language parses the requested language.
func (r LanguageRequest) Language() (content.Language, error) {
	l, err := content.ParseLanguage(r.Lang)
	if err != nil {
		return content.DefaultLanguage, fmt.Errorf("lang: %w", err)
	}
	return l, nil
}
