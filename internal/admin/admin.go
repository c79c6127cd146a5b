package admin

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"quizmgr/internal/prompt"
	"quizmgr/internal/question"
	"quizmgr/internal/store"
	"quizmgr/internal/ui/live"
)

// Admin menu options.
const (
	optionView = iota + 1
	optionCreate
	optionEdit
	optionDelete
	optionReturn
)

// Edit field selectors.
const (
	fieldText = iota + 1
	fieldChoices
	fieldAnswer
	fieldAll
)

// Options configures a Controller.
type Options struct {
	Theme  live.Theme
	Logger *zap.Logger
}

// Controller runs the admin menu against a store it borrows for the call.
type Controller struct {
	store  *store.Store
	prompt *prompt.Prompter
	out    io.Writer
	theme  live.Theme
	logger *zap.Logger
}

// New returns a Controller over s that reads answers through p.
func New(s *store.Store, p *prompt.Prompter, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		store:  s,
		prompt: p,
		out:    p.Out(),
		theme:  opts.Theme,
		logger: logger,
	}
}

// Run shows the admin menu until the user returns to the main menu.
// It only fails when input is exhausted.
func (c *Controller) Run() error {
	for {
		c.section("ADMIN MODE")
		fmt.Fprintln(c.out, "1. View all questions")
		fmt.Fprintln(c.out, "2. Create/Add a question")
		fmt.Fprintln(c.out, "3. Edit/Update a question")
		fmt.Fprintln(c.out, "4. Delete a question")
		fmt.Fprintln(c.out, "5. Return to main menu")
		choice, ok, err := c.prompt.Int("Select an option (1-5): ", optionView, optionReturn)
		if err != nil {
			return err
		}
		if !ok || choice == optionReturn {
			return nil
		}
		switch choice {
		case optionView:
			c.ViewAll()
		case optionCreate:
			err = c.Create()
		case optionEdit:
			err = c.Edit()
		case optionDelete:
			err = c.Delete()
		}
		if err != nil {
			return err
		}
	}
}

// ViewAll lists every slot.
func (c *Controller) ViewAll() {
	c.section("ALL QUESTIONS")
	WriteSlots(c.out, c.theme, c.store.All())
}

// Create writes a new question into the first empty slot, or into a slot
// the user picks when none is empty.
func (c *Controller) Create() error {
	c.section("CREATE / ADD QUESTION")
	slot, empty := c.store.FirstEmpty()
	if empty {
		fmt.Fprintf(c.out, "Adding to empty slot #%d\n", slot+1)
	} else {
		fmt.Fprintln(c.out, "No empty slots. You can replace an existing question.")
		n, ok, err := c.prompt.Int(fmt.Sprintf("Choose a question number to replace (1-%d): ", store.Capacity), 1, store.Capacity)
		if err != nil || !ok {
			return err
		}
		slot = n - 1
	}

	text, err := c.prompt.NonEmpty("Enter question text: ")
	if err != nil {
		return err
	}
	choices, err := c.readChoices("Enter choice")
	if err != nil {
		return err
	}
	answer, err := c.prompt.Letter("Enter correct answer (A/B/C/D): ")
	if err != nil {
		return err
	}
	if err := c.store.Set(slot, question.Question{Text: text, Choices: choices, Answer: answer}); err != nil {
		return err
	}
	c.logger.Info("question saved", zap.Int("slot", slot+1), zap.Bool("replaced", !empty))
	fmt.Fprintln(c.out, c.theme.Success("Question saved."))
	return nil
}

// Edit changes the text, choices, answer, or all three of a filled slot.
func (c *Controller) Edit() error {
	c.section("EDIT / UPDATE QUESTION")
	n, ok, err := c.prompt.Int(fmt.Sprintf("Select question number to edit (1-%d): ", store.Capacity), 1, store.Capacity)
	if err != nil || !ok {
		return err
	}
	slot := n - 1
	current, err := c.store.Get(slot)
	if err != nil {
		return err
	}
	if !current.Filled() {
		fmt.Fprintln(c.out, c.theme.Warning("Selected slot is empty. Consider creating a question instead."))
		return nil
	}

	WriteQuestion(c.out, current, n)
	fmt.Fprintln(c.out, "Which field do you want to edit?")
	fmt.Fprintln(c.out, "1. Question text")
	fmt.Fprintln(c.out, "2. Choices")
	fmt.Fprintln(c.out, "3. Correct answer")
	fmt.Fprintln(c.out, "4. Edit all fields")
	field, ok, err := c.prompt.Int("Select (1-4): ", fieldText, fieldAll)
	if err != nil || !ok {
		return err
	}

	edited := current
	if field == fieldText || field == fieldAll {
		if edited.Text, err = c.prompt.NonEmpty("New question text: "); err != nil {
			return err
		}
	}
	if field == fieldChoices || field == fieldAll {
		if edited.Choices, err = c.readChoices("New choice"); err != nil {
			return err
		}
	}
	if field == fieldAnswer || field == fieldAll {
		if edited.Answer, err = c.prompt.Letter("New correct answer (A/B/C/D): "); err != nil {
			return err
		}
	}
	if err := c.store.Update(slot, func(q *question.Question) { *q = edited }); err != nil {
		return err
	}
	c.logger.Info("question updated", zap.Int("slot", n), zap.Int("field", field))

	if !edited.Filled() {
		fmt.Fprintln(c.out, c.theme.Warning("Warning: The updated question is incomplete. Please ensure all fields are set."))
		return nil
	}
	fmt.Fprintln(c.out, c.theme.Success("Question updated successfully."))
	return nil
}

// Delete resets a slot to the empty question.
func (c *Controller) Delete() error {
	c.section("DELETE QUESTION")
	n, ok, err := c.prompt.Int(fmt.Sprintf("Select question number to delete (1-%d): ", store.Capacity), 1, store.Capacity)
	if err != nil || !ok {
		return err
	}
	if err := c.store.Clear(n - 1); err != nil {
		return err
	}
	c.logger.Info("question cleared", zap.Int("slot", n))
	fmt.Fprintf(c.out, "Question #%d cleared.\n", n)
	return nil
}

func (c *Controller) readChoices(label string) (question.Choices, error) {
	var choices question.Choices
	for _, letter := range question.Letters() {
		value, err := c.prompt.NonEmpty(fmt.Sprintf("%s %s: ", label, letter))
		if err != nil {
			return question.Choices{}, err
		}
		choices[letter.Index()] = value
	}
	return choices, nil
}

func (c *Controller) section(title string) {
	fmt.Fprintln(c.out, c.theme.Divider())
	fmt.Fprintln(c.out, c.theme.Heading(title))
}
