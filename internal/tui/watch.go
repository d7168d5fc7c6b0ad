package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chronosdeck/internal/model"
	"chronosdeck/internal/paths"
	"chronosdeck/internal/stats"
	"chronosdeck/internal/storage"
)

// snapshotMsg carries a fresh collection snapshot from a watch.
type snapshotMsg struct {
	kind string
	docs []storage.Document
}

// watchClosedMsg is sent when a watch channel closes.
type watchClosedMsg struct {
	kind string
}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// WatchModel is the bubbletea model for the live dashboard. Each section
// re-renders from the full snapshot pushed by its collection watch.
type WatchModel struct {
	subjects []*model.Subject
	tasks    []*model.Task
	sessions []*model.StudySession
	decks    []*model.Deck

	watches map[string]*storage.Watch

	width  int
	height int
	err    error
}

// NewWatchModel opens watches on the user's collections and returns a model
// ready to run. Close releases the watches; the program calls it on quit.
func NewWatchModel(db *storage.DB, r paths.Resolver, uid string) *WatchModel {
	return &WatchModel{
		watches: map[string]*storage.Watch{
			paths.KindSubjects: db.Watch(r.Subjects(uid)),
			paths.KindTasks:    db.Watch(r.Tasks(uid)),
			paths.KindSessions: db.Watch(r.Sessions(uid)),
			paths.KindDecks:    db.Watch(r.Decks(uid)),
		},
	}
}

// Close stops all collection watches.
func (m *WatchModel) Close() {
	for _, w := range m.watches {
		w.Close()
	}
}

// Init initializes the model.
func (m *WatchModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.watches))
	for kind := range m.watches {
		cmds = append(cmds, m.waitCmd(kind))
	}
	return tea.Batch(cmds...)
}

// waitCmd blocks on one watch channel and converts deliveries to messages.
func (m *WatchModel) waitCmd(kind string) tea.Cmd {
	w := m.watches[kind]
	return func() tea.Msg {
		docs, ok := <-w.Updates()
		if !ok {
			return watchClosedMsg{kind: kind}
		}
		return snapshotMsg{kind: kind, docs: docs}
	}
}

// Update handles messages and updates the model.
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Close()
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		if err := m.apply(msg.kind, msg.docs); err != nil {
			m.err = err
		}
		return m, m.waitCmd(msg.kind)

	case watchClosedMsg:
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// apply replaces one section's data with a decoded snapshot.
func (m *WatchModel) apply(kind string, docs []storage.Document) error {
	switch kind {
	case paths.KindSubjects:
		subjects := make([]*model.Subject, 0, len(docs))
		for _, doc := range docs {
			s := &model.Subject{}
			if err := doc.Decode(s); err != nil {
				return err
			}
			subjects = append(subjects, s)
		}
		sort.Slice(subjects, func(i, j int) bool { return subjects[i].Name < subjects[j].Name })
		m.subjects = subjects

	case paths.KindTasks:
		tasks := make([]*model.Task, 0, len(docs))
		for _, doc := range docs {
			t := &model.Task{}
			if err := doc.Decode(t); err != nil {
				return err
			}
			tasks = append(tasks, t)
		}
		sort.Slice(tasks, func(i, j int) bool {
			if tasks[i].IsComplete != tasks[j].IsComplete {
				return !tasks[i].IsComplete
			}
			return tasks[i].TaskName < tasks[j].TaskName
		})
		m.tasks = tasks

	case paths.KindSessions:
		sessions := make([]*model.StudySession, 0, len(docs))
		for _, doc := range docs {
			s := &model.StudySession{}
			if err := doc.Decode(s); err != nil {
				return err
			}
			sessions = append(sessions, s)
		}
		m.sessions = sessions

	case paths.KindDecks:
		decks := make([]*model.Deck, 0, len(docs))
		for _, doc := range docs {
			d := &model.Deck{}
			if err := doc.Decode(d); err != nil {
				return err
			}
			decks = append(decks, d)
		}
		sort.Slice(decks, func(i, j int) bool { return decks[i].DeckName < decks[j].DeckName })
		m.decks = decks
	}
	return nil
}

// View renders the dashboard.
func (m *WatchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("chronosdeck live"))
	b.WriteString("\n")

	b.WriteString(m.renderTasks())
	b.WriteString("\n")
	b.WriteString(m.renderStudyTime())
	b.WriteString("\n")
	b.WriteString(m.renderCollections())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleError.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(StyleHelp.Render("q: quit"))
	return b.String()
}

func (m *WatchModel) renderTasks() string {
	var content strings.Builder
	content.WriteString(StyleTitle.Render("Tasks"))
	content.WriteString("\n")

	if len(m.tasks) == 0 {
		content.WriteString(StyleSubtitle.Render("No tasks yet"))
	}
	for _, t := range m.tasks {
		line := "[ ] " + StyleTask.Render(t.TaskName)
		if t.IsComplete {
			line = "[x] " + StyleDone.Render(t.TaskName)
		}
		if t.SubjectTag != "" {
			line += "  " + StyleSubject.Render("#"+t.SubjectTag)
		}
		if t.DueDate != "" {
			line += "  " + StyleDue.Render("due "+t.DueDate)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}

	return m.box().Render(strings.TrimRight(content.String(), "\n"))
}

func (m *WatchModel) renderStudyTime() string {
	var content strings.Builder
	content.WriteString(StyleTitle.Render("Study Time"))
	content.WriteString("\n")

	totals := stats.SortedTotals(stats.TotalsBySubject(m.sessions))
	chart := stats.NewChart()
	chart.Width = 24
	content.WriteString(chart.Render(totals))

	return m.box().Render(strings.TrimRight(content.String(), "\n"))
}

func (m *WatchModel) renderCollections() string {
	var content strings.Builder

	names := make([]string, 0, len(m.subjects))
	for _, s := range m.subjects {
		names = append(names, StyleSubject.Render(s.Name))
	}
	if len(names) == 0 {
		content.WriteString(StyleSubtitle.Render("No subjects yet"))
	} else {
		content.WriteString(strings.Join(names, "  "))
	}
	content.WriteString("\n")
	content.WriteString(StyleSubtitle.Render(fmt.Sprintf("%d deck(s)", len(m.decks))))

	return m.box().Render(content.String())
}

func (m *WatchModel) box() lipgloss.Style {
	style := StyleSectionBox
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style
}
