package httpadapter

import (
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

var allowedBannerTypes = []string{"image/jpeg", "image/png", "image/webp"}

// campaignForm holds the text fields of a create or update request.
type campaignForm struct {
	Text   string   `form:"text" validate:"required,notblank,min=3,max=128"`
	Amount *int64   `form:"amount" validate:"required,min=0"`
	Price  *float64 `form:"price" validate:"required,gt=0"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// parseCampaignInput reads and validates a multipart create or update
// request. Every error it returns matches port.ErrValidation.
func (h *Handler) parseCampaignInput(w http.ResponseWriter, r *http.Request) (port.CampaignInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.opts.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return port.CampaignInput{}, port.NewValidationError("body", fmt.Sprintf("exceeds %d bytes", tooLarge.Limit))
		}
		return port.CampaignInput{}, port.NewValidationError("body", "expected multipart/form-data")
	}

	var missing []string
	for _, field := range []string{"text", "amount", "price"} {
		if _, ok := r.MultipartForm.Value[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return port.CampaignInput{}, port.NewValidationError(strings.Join(missing, ", "), "required field missing")
	}

	form := campaignForm{Text: r.FormValue("text")}
	amount, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("amount")), 10, 64)
	if err != nil {
		return port.CampaignInput{}, port.NewValidationError("amount", "must be a non-negative integer")
	}
	form.Amount = &amount
	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return port.CampaignInput{}, port.NewValidationError("price", "must be a positive number")
	}
	form.Price = &price

	if err = h.validate.Struct(&form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return port.CampaignInput{}, port.NewValidationError(verrs[0].Field(), "failed rule "+verrs[0].Tag())
		}
		return port.CampaignInput{}, port.NewValidationError("body", err.Error())
	}

	banner, err := readBanner(r)
	if err != nil {
		return port.CampaignInput{}, err
	}

	return port.CampaignInput{
		Text:   form.Text,
		Amount: amount,
		Price:  price,
		Banner: banner,
	}, nil
}

// readBanner loads the banner part and checks it is a jpeg, png or webp
// image. The type is sniffed from the content; the declared part type is
// only used when the content is not recognised.
func readBanner(r *http.Request) (domain.Banner, error) {
	file, header, err := r.FormFile("banner")
	if errors.Is(err, http.ErrMissingFile) {
		return domain.Banner{}, port.NewValidationError("banner", "file is required")
	}
	if err != nil {
		return domain.Banner{}, port.NewValidationError("banner", "unreadable file")
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.Banner{}, port.NewValidationError("banner", "unreadable file")
	}
	if len(data) == 0 {
		return domain.Banner{}, port.NewValidationError("banner", "file is empty")
	}

	contentType := http.DetectContentType(data)
	if contentType == "application/octet-stream" {
		contentType = header.Header.Get("Content-Type")
	}
	if !slices.Contains(allowedBannerTypes, contentType) {
		return domain.Banner{}, port.NewValidationError("banner",
			fmt.Sprintf("type %q is not one of %s", contentType, strings.Join(allowedBannerTypes, ", ")))
	}

	return domain.Banner{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
