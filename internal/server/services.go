package server

import (
	"fmt"
	"io/fs"

	"github.com/kumobot/botsite/internal/site"
	"github.com/kumobot/botsite/internal/status"
)

type Services struct {
	Status   *status.Generator
	Renderer *site.Renderer
	Static   fs.FS
}

func NewServices(config *Config, start *status.StartTime) (*Services, error) {
	siteFS, err := site.Open(config.Site.Dir)
	if err != nil {
		return nil, err
	}

	renderer, err := site.NewRenderer(siteFS, site.Pages...)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	static, err := site.Static(siteFS)
	if err != nil {
		return nil, err
	}

	return &Services{
		Status:   status.NewGenerator(start),
		Renderer: renderer,
		Static:   static,
	}, nil
}
