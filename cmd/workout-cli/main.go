package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"workout-server/client"
	"workout-server/entities"
	"workout-server/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:3001"

// Autosave delay: every draft mutation reschedules a save this far out.
const autosaveDelay = 2 * time.Second

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

type step int

const (
	stepEnteringUsername step = iota
	stepEnteringPassword
	stepLoggingIn
	stepLoginFailed
	stepLoadingWorkouts
	stepWorkoutList
	stepTemplateList
	stepSession
	stepSelectingExercise
	stepEditingWeight
	stepEditingReps
)

type model struct {
	api      *client.Client
	step     step
	username string
	password string

	workouts  []entities.Workout
	templates []entities.Workout
	exercises []entities.Exercise

	draft    *session.Draft
	debounce *session.Debouncer

	cursor       int
	exCursor     int
	currentInput string
	message      string
	quitting     bool
}

type loginSuccessMsg struct{ creds client.Credentials }
type workoutsLoadedMsg struct {
	workouts  []entities.Workout
	exercises []entities.Exercise
}
type templatesLoadedMsg struct{ templates []entities.Workout }
type templateSavedMsg struct{}
type sessionOpenedMsg struct{ workout entities.Workout }
type saveTickMsg struct{ gen uint64 }
type savedMsg struct{}
type sessionClosedMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(api *client.Client) model {
	return model{
		api:      api,
		step:     stepEnteringUsername,
		debounce: session.NewDebouncer(autosaveDelay),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func login(api *client.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		creds, err := api.Login(username, password)
		if err != nil {
			return errMsg{fmt.Errorf("login failed: %w", err)}
		}
		return loginSuccessMsg{creds: *creds}
	}
}

func signupAndLogin(api *client.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		if _, err := api.Signup(username, password); err != nil {
			return errMsg{fmt.Errorf("signup failed: %w", err)}
		}
		creds, err := api.Login(username, password)
		if err != nil {
			return errMsg{fmt.Errorf("login failed: %w", err)}
		}
		return loginSuccessMsg{creds: *creds}
	}
}

func loadWorkouts(api *client.Client) tea.Cmd {
	return func() tea.Msg {
		workouts, err := api.Workouts()
		if err != nil {
			return errMsg{fmt.Errorf("failed to load workouts: %w", err)}
		}
		exercises, err := api.Exercises()
		if err != nil {
			return errMsg{fmt.Errorf("failed to load exercises: %w", err)}
		}
		return workoutsLoadedMsg{workouts: workouts, exercises: exercises}
	}
}

func loadTemplates(api *client.Client) tea.Cmd {
	return func() tea.Msg {
		templates, err := api.Templates()
		if err != nil {
			return errMsg{fmt.Errorf("failed to load templates: %w", err)}
		}
		return templatesLoadedMsg{templates: templates}
	}
}

func cloneTemplate(api *client.Client, templateID string) tea.Cmd {
	return func() tea.Msg {
		workout, err := api.CreateFromTemplate(templateID)
		if err != nil {
			return errMsg{fmt.Errorf("failed to start workout from template: %w", err)}
		}
		return sessionOpenedMsg{workout: *workout}
	}
}

func saveTemplate(api *client.Client, sets []entities.Set) tea.Cmd {
	return func() tea.Msg {
		if _, err := api.CreateTemplate(sets); err != nil {
			return errMsg{fmt.Errorf("failed to save template: %w", err)}
		}
		return templateSavedMsg{}
	}
}

func startWorkout(api *client.Client) tea.Cmd {
	return func() tea.Msg {
		workout, err := api.CreateWorkout()
		if err != nil {
			return errMsg{fmt.Errorf("failed to start workout: %w", err)}
		}
		return sessionOpenedMsg{workout: *workout}
	}
}

func openWorkout(api *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		workout, err := api.Workout(id)
		if err != nil {
			return errMsg{fmt.Errorf("failed to open workout: %w", err)}
		}
		return sessionOpenedMsg{workout: *workout}
	}
}

func saveWorkout(api *client.Client, draft *session.Draft) tea.Cmd {
	return func() tea.Msg {
		snapshot := draft.Workout()
		if err := api.UpdateWorkout(snapshot.ID, snapshot.Sets); err != nil {
			return errMsg{fmt.Errorf("autosave failed: %w", err)}
		}
		return savedMsg{}
	}
}

// closeSession persists or discards the draft on teardown: an empty
// workout younger than a minute is an abandoned draft and is deleted,
// anything else gets a final save.
func closeSession(api *client.Client, draft *session.Draft) tea.Cmd {
	return func() tea.Msg {
		snapshot := draft.Workout()
		if draft.ShouldDiscard(time.Now()) {
			if err := api.DeleteWorkout(snapshot.ID); err != nil {
				return errMsg{fmt.Errorf("failed to discard workout: %w", err)}
			}
			return sessionClosedMsg{}
		}
		if err := api.UpdateWorkout(snapshot.ID, snapshot.Sets); err != nil {
			return errMsg{fmt.Errorf("failed to save workout: %w", err)}
		}
		return sessionClosedMsg{}
	}
}

// scheduleSave registers a pending autosave and arms its timer.
func (m *model) scheduleSave() tea.Cmd {
	gen := m.debounce.Schedule()
	return tea.Tick(m.debounce.Delay(), func(time.Time) tea.Msg {
		return saveTickMsg{gen: gen}
	})
}

func (m model) sessionSets() []entities.Set {
	if m.draft == nil {
		return nil
	}
	return m.draft.Workout().Sets
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case loginSuccessMsg:
		m.username = msg.creds.Username
		m.step = stepLoadingWorkouts
		m.message = successStyle.Render("Logged in as " + m.username)
		return m, loadWorkouts(m.api)

	case workoutsLoadedMsg:
		m.workouts = msg.workouts
		m.exercises = msg.exercises
		m.step = stepWorkoutList
		m.cursor = 0
		return m, nil

	case templatesLoadedMsg:
		m.templates = msg.templates
		m.step = stepTemplateList
		m.cursor = 0
		m.message = ""
		return m, nil

	case templateSavedMsg:
		m.message = doneStyle.Render("saved as template")
		return m, nil

	case sessionOpenedMsg:
		m.draft = session.NewDraft(msg.workout, m.workouts)
		m.step = stepSession
		m.cursor = 0
		m.message = ""
		return m, nil

	case saveTickMsg:
		// Only the latest scheduled save may fire; older ones were
		// superseded by further edits.
		if m.draft != nil && m.debounce.Due(msg.gen) {
			return m, saveWorkout(m.api, m.draft)
		}
		return m, nil

	case savedMsg:
		m.message = doneStyle.Render("saved")
		return m, nil

	case sessionClosedMsg:
		m.draft = nil
		m.step = stepLoadingWorkouts
		m.message = ""
		return m, loadWorkouts(m.api)

	case errMsg:
		m.message = errorStyle.Render(msg.err.Error())
		if m.step == stepLoggingIn {
			m.step = stepLoginFailed
			m.currentInput = ""
		}
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.step {
	case stepEnteringUsername, stepEnteringPassword, stepEditingWeight, stepEditingReps:
		return m.handleInputKey(key)

	case stepLoginFailed:
		switch key {
		case "s":
			m.step = stepLoggingIn
			m.message = "Creating account..."
			return m, signupAndLogin(m.api, m.username, m.password)
		case "q":
			m.quitting = true
			return m, tea.Quit
		default:
			m.step = stepEnteringUsername
			m.currentInput = ""
			m.message = ""
		}

	case stepWorkoutList:
		switch key {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.workouts)-1 {
				m.cursor++
			}
		case "n":
			m.message = "Starting workout..."
			return m, startWorkout(m.api)
		case "t":
			m.message = "Loading templates..."
			return m, loadTemplates(m.api)
		case "enter":
			if len(m.workouts) > 0 {
				return m, openWorkout(m.api, m.workouts[m.cursor].ID)
			}
		}

	case stepTemplateList:
		switch key {
		case "q", "esc":
			m.step = stepWorkoutList
			m.cursor = 0
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.templates)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.templates) > 0 {
				m.message = "Starting workout from template..."
				return m, cloneTemplate(m.api, m.templates[m.cursor].ID)
			}
		}

	case stepSession:
		sets := m.sessionSets()
		switch key {
		case "q", "esc":
			return m, closeSession(m.api, m.draft)
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(sets)-1 {
				m.cursor++
			}
		case "a":
			if len(m.exercises) > 0 {
				m.step = stepSelectingExercise
				m.exCursor = 0
			} else {
				m.message = errorStyle.Render("no exercises in the library")
			}
		case " ":
			if m.cursor < len(sets) {
				s := sets[m.cursor]
				m.draft.UpdateSet(s.UUID, s.Weight, s.Repetitions, !s.Completed)
				return m, m.scheduleSave()
			}
		case "w":
			if m.cursor < len(sets) {
				m.step = stepEditingWeight
				m.currentInput = ""
			}
		case "r":
			if m.cursor < len(sets) {
				m.step = stepEditingReps
				m.currentInput = ""
			}
		case "d":
			if m.cursor < len(sets) {
				m.draft.RemoveSet(sets[m.cursor].UUID)
				if m.cursor > 0 {
					m.cursor--
				}
				return m, m.scheduleSave()
			}
		case "t":
			if len(sets) > 0 {
				m.message = "Saving template..."
				return m, saveTemplate(m.api, sets)
			}
			m.message = errorStyle.Render("nothing to save as a template")
		}

	case stepSelectingExercise:
		switch key {
		case "q", "esc":
			m.step = stepSession
		case "up", "k":
			if m.exCursor > 0 {
				m.exCursor--
			}
		case "down", "j":
			if m.exCursor < len(m.exercises)-1 {
				m.exCursor++
			}
		case "enter":
			m.draft.AddSet(m.exercises[m.exCursor])
			m.step = stepSession
			m.cursor = len(m.sessionSets()) - 1
			return m, m.scheduleSave()
		}
	}

	return m, nil
}

func (m model) handleInputKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "backspace":
		if len(m.currentInput) > 0 {
			m.currentInput = m.currentInput[:len(m.currentInput)-1]
		}

	case "esc":
		if m.step == stepEditingWeight || m.step == stepEditingReps {
			m.step = stepSession
			m.currentInput = ""
		}

	case "enter":
		switch m.step {
		case stepEnteringUsername:
			if m.currentInput != "" {
				m.username = m.currentInput
				m.currentInput = ""
				m.step = stepEnteringPassword
			}

		case stepEnteringPassword:
			if m.currentInput != "" {
				m.password = m.currentInput
				m.currentInput = ""
				m.step = stepLoggingIn
				m.message = "Logging in..."
				return m, login(m.api, m.username, m.password)
			}

		case stepEditingWeight, stepEditingReps:
			sets := m.sessionSets()
			if m.cursor < len(sets) {
				s := sets[m.cursor]
				weight, repetitions := s.Weight, s.Repetitions
				if m.step == stepEditingWeight {
					weight = session.ParseWeight(m.currentInput, s.Weight)
				} else {
					repetitions = session.ParseRepetitions(m.currentInput, s.Repetitions)
				}
				m.draft.UpdateSet(s.UUID, weight, repetitions, s.Completed)
				m.step = stepSession
				m.currentInput = ""
				return m, m.scheduleSave()
			}
			m.step = stepSession
			m.currentInput = ""
		}

	default:
		if len(key) == 1 {
			m.currentInput += key
		}
	}

	return m, nil
}

// templateLabel summarizes a template by its distinct exercises.
func templateLabel(tmpl entities.Workout) string {
	var names []string
	seen := make(map[string]bool)
	for _, set := range tmpl.Sets {
		if name := set.Exercise.Name; name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("%d set(s)", len(tmpl.Sets))
	}
	return fmt.Sprintf("%s (%d set(s))", strings.Join(names, ", "), len(tmpl.Sets))
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Workout Log\n\n"))

	switch m.step {
	case stepEnteringUsername:
		s.WriteString(promptStyle.Render("Enter your username:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter your password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("*", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepLoadingWorkouts:
		s.WriteString(m.message + "\n")

	case stepLoginFailed:
		s.WriteString(m.message + "\n\n")
		s.WriteString("Press s to create this account, q to quit, any other key to retry\n")

	case stepWorkoutList:
		s.WriteString(promptStyle.Render("Your workouts:\n\n"))
		if len(m.workouts) == 0 {
			s.WriteString(normalStyle.Render("(no workouts yet)\n"))
		}
		for i, w := range m.workouts {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			label := fmt.Sprintf("%s - %d set(s)", w.Date.Format("Mon Jan 2 15:04"), len(w.Sets))
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(label)))
		}
		s.WriteString("\nUse up/down, Enter to open, n for new workout, t for templates, q to quit\n")

	case stepTemplateList:
		s.WriteString(promptStyle.Render("Templates:\n\n"))
		if len(m.templates) == 0 {
			s.WriteString(normalStyle.Render("(no templates yet, press t in a session to save one)\n"))
		}
		for i, tmpl := range m.templates {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(templateLabel(tmpl))))
		}
		s.WriteString("\nUse up/down, Enter to start a workout from it, esc to go back\n")

	case stepSession:
		s.WriteString(promptStyle.Render("Session:\n\n"))
		sets := m.sessionSets()
		if len(sets) == 0 {
			s.WriteString(normalStyle.Render("(no sets yet, press a to add one)\n"))
		}
		for i, set := range sets {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			mark := "[ ]"
			if set.Completed {
				mark = doneStyle.Render("[x]")
			}
			label := fmt.Sprintf("%s %s  %.1f kg x %d", mark, set.Exercise.Name, set.Weight, set.Repetitions)
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(label)))
		}
		if m.message != "" {
			s.WriteString("\n" + m.message + "\n")
		}
		s.WriteString("\na add set, space toggle, w weight, r reps, d delete, t save template, q back\n")

	case stepSelectingExercise:
		s.WriteString(promptStyle.Render("Pick an exercise:\n\n"))
		for i, ex := range m.exercises {
			cursor := " "
			style := normalStyle
			if m.exCursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(ex.Name)))
		}
		s.WriteString("\nUse up/down, Enter to add, esc to cancel\n")

	case stepEditingWeight:
		s.WriteString(promptStyle.Render("New weight (kg):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEditingReps:
		s.WriteString(promptStyle.Render("New repetitions:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")
	}

	return s.String()
}

func main() {
	baseURL := defaultServerURL
	if env := os.Getenv("WORKOUT_SERVER_URL"); env != "" {
		baseURL = env
	}

	p := tea.NewProgram(initialModel(client.New(baseURL)))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
