// Package content is the bilingual text table of the site. The table is
// loaded once, validated, and read-only afterwards.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pavanpadamata/portfolio/internal/i18n"
)

// FileName is the table document inside a content directory.
const FileName = "site.yaml"

//go:embed site.yaml
var defaultDocument []byte

// ErrInvalid marks a content authoring defect found at load time.
var ErrInvalid = errors.New("content: invalid table")

type document struct {
	Profile   Profile           `yaml:"profile"`
	TechStack []TechCategory    `yaml:"techStack" validate:"required,min=1,dive"`
	Locales   map[string]Locale `yaml:"locales" validate:"required,dive"`
}

// Table is the validated content of the site.
type Table struct {
	Profile   Profile
	TechStack []TechCategory
	locales   map[i18n.Language]*Locale
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the table compiled into the binary.
func Default() (*Table, error) {
	return Parse(defaultDocument)
}

// DefaultDocument returns a copy of the embedded site.yaml.
func DefaultDocument() []byte {
	return append([]byte(nil), defaultDocument...)
}

// LoadDir reads site.yaml from dir.
func LoadDir(dir string) (*Table, error) {
	return Load(os.DirFS(dir))
}

// Load reads site.yaml from the root of fsys.
func Load(fsys fs.FS) (*Table, error) {
	raw, err := fs.ReadFile(fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a table document.
func Parse(raw []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", FileName, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, describe(err))
	}

	t := &Table{
		Profile:   doc.Profile,
		TechStack: doc.TechStack,
		locales:   make(map[i18n.Language]*Locale, len(doc.Locales)),
	}
	for code, loc := range doc.Locales {
		lang, ok := i18n.Parse(code)
		if !ok || string(lang) != code {
			return nil, fmt.Errorf("%w: unsupported language %q", ErrInvalid, code)
		}
		loc := loc
		t.locales[lang] = &loc
	}
	for _, lang := range i18n.Supported() {
		if _, ok := t.locales[lang]; !ok {
			return nil, fmt.Errorf("%w: missing translation for %q", ErrInvalid, lang)
		}
	}
	if err := t.checkParity(); err != nil {
		return nil, err
	}
	return t, nil
}

// checkParity makes sure switching language never changes the shape of a
// section: same number of list items and the same icons in the same slots.
func (t *Table) checkParity() error {
	base := t.locales[i18n.Default]
	for _, lang := range i18n.Supported() {
		if lang == i18n.Default {
			continue
		}
		loc := t.locales[lang]
		if got, want := len(loc.Projects.Items), len(base.Projects.Items); got != want {
			return fmt.Errorf("%w: %s has %d projects, %s has %d", ErrInvalid, lang, got, i18n.Default, want)
		}
		if got, want := len(loc.Services.Items), len(base.Services.Items); got != want {
			return fmt.Errorf("%w: %s has %d services, %s has %d", ErrInvalid, lang, got, i18n.Default, want)
		}
		if got, want := len(loc.About.CertList), len(base.About.CertList); got != want {
			return fmt.Errorf("%w: %s has %d certifications, %s has %d", ErrInvalid, lang, got, i18n.Default, want)
		}
		for i := range loc.Services.Items {
			if loc.Services.Items[i].Icon != base.Services.Items[i].Icon {
				return fmt.Errorf("%w: service %d icon %q in %s differs from %q in %s", ErrInvalid,
					i, loc.Services.Items[i].Icon, lang, base.Services.Items[i].Icon, i18n.Default)
			}
		}
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// Languages returns the languages present in the table.
func (t *Table) Languages() []i18n.Language {
	out := make([]i18n.Language, 0, len(t.locales))
	for _, l := range i18n.Supported() {
		if _, ok := t.locales[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Locale returns the localized table for lang, or the default language's
// table when lang is unsupported.
func (t *Table) Locale(lang i18n.Language) *Locale {
	if loc, ok := t.locales[lang]; ok {
		return loc
	}
	return t.locales[i18n.Default]
}

// Section looks up one section of lang. ok is false only for an unknown
// section name.
func (t *Table) Section(lang i18n.Language, name SectionName) (Section, bool) {
	loc := t.Locale(lang)
	switch name {
	case SectionNav:
		return loc.Nav, true
	case SectionHero:
		return loc.Hero, true
	case SectionAbout:
		return loc.About, true
	case SectionProjects:
		return loc.Projects, true
	case SectionBlog:
		return loc.Blog, true
	case SectionServices:
		return loc.Services, true
	case SectionContact:
		return loc.Contact, true
	case SectionFooter:
		return loc.Footer, true
	}
	return nil, false
}
