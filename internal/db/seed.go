package db

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

var demoCampaigns = []struct {
	text   string
	amount int64
	price  float64
	tint   color.RGBA
}{
	{text: "Spring sale on sneakers", amount: 50, price: 1.5, tint: color.RGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff}},
	{text: "Learn Go in a weekend", amount: 20, price: 2.25, tint: color.RGBA{R: 0x00, G: 0xad, B: 0xd8, A: 0xff}},
	{text: "Fresh coffee delivered", amount: 100, price: 0.75, tint: color.RGBA{R: 0x6f, G: 0x4e, B: 0x37, A: 0xff}},
	{text: "Weekend city tours", amount: 10, price: 2.25, tint: color.RGBA{R: 0x40, G: 0xa0, B: 0x40, A: 0xff}},
	{text: "Noise cancelling headphones", amount: 5, price: 3, tint: color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}},
}

// Seed creates a handful of demo campaigns with generated placeholder
// banners. It does nothing when any active campaign already exists, so it
// is safe to run on every start.
func Seed(ctx context.Context, svc port.AdvertisementUseCase, existing port.CampaignLister) (int, error) {
	active, err := existing.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	if len(active) > 0 {
		return 0, nil
	}

	for i, demo := range demoCampaigns {
		banner, err := placeholderBanner(demo.tint)
		if err != nil {
			return i, err
		}
		_, err = svc.Create(ctx, port.CampaignInput{
			Text:   demo.text,
			Amount: demo.amount,
			Price:  demo.price,
			Banner: domain.Banner{
				Filename:    fmt.Sprintf("demo-%d.png", i+1),
				ContentType: "image/png",
				Data:        banner,
			},
		})
		if err != nil {
			return i, fmt.Errorf("seed campaign %q: %w", demo.text, err)
		}
	}
	return len(demoCampaigns), nil
}

func placeholderBanner(tint color.RGBA) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 320, 50))
	for y := range 50 {
		for x := range 320 {
			img.SetRGBA(x, y, tint)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
