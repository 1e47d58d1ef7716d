// Package generate прогоняет генерацию по всем моделям реестра и пишет артефакты на диск.
package generate

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"autoloader/internal/metadata"
	"autoloader/internal/smartobject"
)

// Failure — таблица, которую не удалось сгенерировать.
type Failure struct {
	Class     string   `json:"class"`
	Classes   []string `json:"classes"`
	Extension string   `json:"extension"`
	Table     string   `json:"table"`
	Error     string   `json:"error"`
	err       error
}

func (f Failure) Unwrap() error { return f.err }

// Result — итог одного прогона.
type Result struct {
	ID       string               `json:"id"`
	Tables   []*smartobject.Table `json:"tables"`
	Failures []Failure            `json:"failures,omitempty"`
}

// Err объединяет ошибки всех неудавшихся таблиц.
func (r *Result) Err() error {
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f.err)
	}
	return errors.Join(errs...)
}

// Table ищет таблицу по имени без учёта регистра.
func (r *Result) Table(name string) (*smartobject.Table, bool) {
	for _, t := range r.Tables {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// TableIn ищет таблицу конкретного расширения: расширяемую таблицу хоста
// могут дополнять несколько расширений.
func (r *Result) TableIn(extension, name string) (*smartobject.Table, bool) {
	for _, t := range r.Tables {
		if strings.EqualFold(t.Name, name) && strings.EqualFold(t.Extension, extension) {
			return t, true
		}
	}
	return nil, false
}

// Failure ищет ошибку генерации таблицы по имени.
func (r *Result) Failure(name string) (Failure, bool) {
	for _, f := range r.Failures {
		if strings.EqualFold(f.Table, name) {
			return f, true
		}
	}
	return Failure{}, false
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

func newID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// unit — одна выходная таблица: собственная таблица модели или таблица хоста,
// которую дополняют все модели одного расширения.
type unit struct {
	extension string
	table     string
	extends   bool
	classes   []string
}

// units группирует модели, сохраняя порядок регистрации: группа расширяемой
// таблицы стоит на месте первой её модели.
func units(reg *metadata.Registry) []*unit {
	var out []*unit
	extended := map[string]*unit{}
	for _, m := range reg.Models() {
		u := &unit{extension: m.ExtensionKey(), table: m.TableName(), extends: m.Extends(), classes: []string{m.Class}}
		if !u.extends {
			out = append(out, u)
			continue
		}
		key := u.extension + "/" + u.table
		if g, ok := extended[key]; ok {
			g.classes = append(g.classes, m.Class)
			continue
		}
		extended[key] = u
		out = append(out, u)
	}
	return out
}

// Run строит все таблицы в порядке регистрации моделей. Ошибка одной таблицы
// не останавливает остальные: она попадает в Failures, а артефактов этой таблицы нет.
func Run(reg *metadata.Registry, svc *smartobject.Service, log *zap.Logger) *Result {
	if log == nil {
		log = zap.NewNop()
	}
	res := &Result{ID: newID()}
	log = log.With(zap.String("build", res.ID))

	for _, u := range units(reg) {
		var (
			t   *smartobject.Table
			err error
		)
		if u.extends {
			t, err = svc.ExtendedTable(u.classes...)
		} else {
			t, err = svc.Table(u.classes[0])
		}
		if err != nil {
			log.Error("table generation failed", zap.Strings("models", u.classes), zap.String("table", u.table), zap.Error(err))
			res.Failures = append(res.Failures, Failure{
				Class:     u.classes[0],
				Classes:   u.classes,
				Extension: u.extension,
				Table:     u.table,
				Error:     err.Error(),
				err:       err,
			})
			continue
		}
		log.Debug("table generated", zap.Strings("models", t.Classes), zap.String("table", t.Name), zap.Bool("extends", t.Extends))
		res.Tables = append(res.Tables, t)
	}

	log.Info("build finished",
		zap.Int("tables", len(res.Tables)),
		zap.Int("failures", len(res.Failures)),
	)
	return res
}
