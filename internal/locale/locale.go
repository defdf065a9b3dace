package locale

import (
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Catalog keys are the English texts.
const (
	keyDuplicateTitle   = "Task already registered"
	keyDuplicateMessage = "You cannot register a task with the same name"
	keyAcknowledge      = "Ok"
	keyRemoveTitle      = "Remove item"
	keyRemoveMessage    = "Are you sure you want to remove this item?"
	keyNo               = "No"
	keyYes              = "Yes"
	keyEmptyTitle       = "Title cannot be empty"
	keyAddPlaceholder   = "Add a new task..."
	keyEditPlaceholder  = "Edit task title..."
	keyEmptyList        = "No tasks yet"
	keyTaskCount        = "You have %d tasks"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		keyDuplicateTitle:   keyDuplicateTitle,
		keyDuplicateMessage: keyDuplicateMessage,
		keyAcknowledge:      keyAcknowledge,
		keyRemoveTitle:      keyRemoveTitle,
		keyRemoveMessage:    keyRemoveMessage,
		keyNo:               keyNo,
		keyYes:              keyYes,
		keyEmptyTitle:       keyEmptyTitle,
		keyAddPlaceholder:   keyAddPlaceholder,
		keyEditPlaceholder:  keyEditPlaceholder,
		keyEmptyList:        keyEmptyList,
	},
	language.BrazilianPortuguese: {
		keyDuplicateTitle:   "Task já cadastrada",
		keyDuplicateMessage: "Você não pode cadastrar uma task com o mesmo nome",
		keyAcknowledge:      "Ok",
		keyRemoveTitle:      "Remover item",
		keyRemoveMessage:    "Tem certeza que você deseja remover esse item?",
		keyNo:               "Não",
		keyYes:              "Sim",
		keyEmptyTitle:       "O título não pode ficar vazio",
		keyAddPlaceholder:   "Adicionar nova tarefa...",
		keyEditPlaceholder:  "Editar título da tarefa...",
		keyEmptyList:        "Nenhuma tarefa ainda",
	},
}

var taskCounts = map[language.Tag]catalog.Message{
	language.English: plural.Selectf(1, "%d",
		plural.One, "You have %d task",
		plural.Other, "You have %d tasks"),
	language.BrazilianPortuguese: plural.Selectf(1, "%d",
		plural.One, "Você tem %d tarefa",
		plural.Other, "Você tem %d tarefas"),
}

var (
	supported = []language.Tag{language.English, language.BrazilianPortuguese}
	matcher   = language.NewMatcher(supported)
	cat       = buildCatalog()
	english   = newMessages(language.English)
)

// buildCatalog panics on error: the entries are static.
func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	for tag, msg := range taskCounts {
		if err := b.Set(tag, keyTaskCount, msg); err != nil {
			panic(err)
		}
	}
	return b
}

// Messages holds every user-facing string of the task screen.
type Messages struct {
	DuplicateTitle   string
	DuplicateMessage string
	Acknowledge      string

	RemoveTitle   string
	RemoveMessage string
	No            string
	Yes           string

	EmptyTitle      string
	AddPlaceholder  string
	EditPlaceholder string
	EmptyList       string

	printer *message.Printer
}

func newMessages(tag language.Tag) Messages {
	p := message.NewPrinter(tag, message.Catalog(cat))
	return Messages{
		DuplicateTitle:   p.Sprintf(keyDuplicateTitle),
		DuplicateMessage: p.Sprintf(keyDuplicateMessage),
		Acknowledge:      p.Sprintf(keyAcknowledge),
		RemoveTitle:      p.Sprintf(keyRemoveTitle),
		RemoveMessage:    p.Sprintf(keyRemoveMessage),
		No:               p.Sprintf(keyNo),
		Yes:              p.Sprintf(keyYes),
		EmptyTitle:       p.Sprintf(keyEmptyTitle),
		AddPlaceholder:   p.Sprintf(keyAddPlaceholder),
		EditPlaceholder:  p.Sprintf(keyEditPlaceholder),
		EmptyList:        p.Sprintf(keyEmptyList),
		printer:          p,
	}
}

// TaskCount renders the header counter with the CLDR plural rules of the
// catalog's language, e.g. "You have 3 tasks".
func (m Messages) TaskCount(n int) string {
	p := m.printer
	if p == nil {
		p = english.printer
	}
	return p.Sprintf(keyTaskCount, n)
}

// English is the default catalog.
func English() Messages { return english }

// For picks the closest catalog for a BCP 47 tag such as "pt-BR" or "en".
// Unknown or malformed tags fall back to English.
func For(tag string) Messages {
	_, idx := language.MatchStrings(matcher, tag)
	if idx < 0 || idx >= len(supported) || idx == 0 {
		return english
	}
	return newMessages(supported[idx])
}

// Supports reports whether tag resolves to one of the catalogs rather than
// the English fallback.
func Supports(tag string) bool {
	t, err := language.Parse(tag)
	if err != nil {
		return false
	}
	_, _, conf := matcher.Match(t)
	return conf != language.No
}

// Supported lists the tags For can resolve to.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, t := range supported {
		out = append(out, t.String())
	}
	return out
}

// SupportedList is Supported joined for help and error texts.
func SupportedList() string { return strings.Join(Supported(), ", ") }
