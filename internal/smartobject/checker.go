package smartobject

import (
	"autoloader/internal/dataset"
	"autoloader/internal/metadata"
	"autoloader/internal/typemap"
)

type checker struct {
	mapper   *typemap.Mapper
	datasets *dataset.Registry
}

func (c checker) KnownType(semanticType string) bool { return c.mapper.Known(semanticType) }
func (c checker) KnownBehavior(name string) bool     { return c.datasets.Known(name) }

// Checker — проверки линтера на тех же маппере и модулях, что и генерация.
func (s *Service) Checker() metadata.Checker {
	return checker{mapper: s.mapper, datasets: s.datasets}
}

// WithModels — копия сервиса над другим реестром моделей, остальные зависимости общие.
func (s *Service) WithModels(p metadata.Provider) *Service {
	c := *s
	c.models = p
	return &c
}
