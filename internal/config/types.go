package config

import "path/filepath"

// Config binds questionnaire variants to their question and answer files.
type Config struct {
	Version       int           `yaml:"version"`
	Questionnaire Questionnaire `yaml:"questionnaire"`
	Variants      []Variant     `yaml:"variants"`

	// BaseDir is the directory the config file was loaded from. Relative
	// questionnaire paths resolve against it.
	BaseDir string `yaml:"-"`
}

// Questionnaire holds the presentation title and the directories question
// files are read from and answer logs are written to.
type Questionnaire struct {
	Title        string `yaml:"title"`
	QuestionsDir string `yaml:"questions_dir"`
	AnswersDir   string `yaml:"answers_dir,omitempty"`
}

// Variant is one edition of the questionnaire, usually a language. Every
// variant appends to its own answer log; logs are never shared.
type Variant struct {
	ID            string `yaml:"id"`
	Label         string `yaml:"label"`
	QuestionsFile string `yaml:"questions_file"`
	AnswersFile   string `yaml:"answers_file,omitempty"`
}

// VariantByID returns the variant with the given id.
func (c Config) VariantByID(id string) (Variant, bool) {
	for _, variant := range c.Variants {
		if variant.ID == id {
			return variant, true
		}
	}
	return Variant{}, false
}

// QuestionsPath resolves the question file location for a variant.
func (c Config) QuestionsPath(v Variant) string {
	return resolvePath(c.BaseDir, c.Questionnaire.QuestionsDir, v.QuestionsFile)
}

// AnswersPath resolves the answer log location for a variant.
func (c Config) AnswersPath(v Variant) string {
	return resolvePath(c.BaseDir, c.Questionnaire.AnswersDir, v.AnswersFile)
}

func resolvePath(base, dir, name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	if filepath.IsAbs(dir) {
		return filepath.Join(dir, name)
	}
	return filepath.Join(base, dir, name)
}
