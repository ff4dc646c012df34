package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"agriai/cmd/agriai/ui"
	"agriai/internal/advisor"
	"agriai/internal/feedback"
	"agriai/internal/locale"
)

const (
	roleUser      = "user"
	roleAssistant = "assistant"
	roleSystem    = "system"
)

type chatEntry struct {
	role string
	text string
}

// streamChunkMsg carries the accumulated assistant message so far.
type streamChunkMsg string

// streamDoneMsg signals the end of a turn.
type streamDoneMsg struct {
	full string
	err  error
}

type chatModel struct {
	client *advisor.Client
	lang   locale.Locale

	styles    ui.Styles
	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	renderer  *glamour.TermRenderer

	history   []chatEntry
	streaming bool
	events    chan tea.Msg

	turnCancel context.CancelFunc

	width  int
	height int
	ready  bool

	hinted bool
}

func newChatModel(client *advisor.Client, lang locale.Locale) chatModel {
	styles := appStyles()

	ti := textinput.New()
	ti.Placeholder = "Ask me anything... (Enter to send, Ctrl+C to exit)"
	ti.Focus()
	ti.CharLimit = 2000

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 20)

	renderer := newChatRenderer(styles, 80)

	return chatModel{
		client:    client,
		lang:      lang,
		styles:    styles,
		textinput: ti,
		viewport:  vp,
		spinner:   sp,
		renderer:  renderer,
		history: []chatEntry{
			{role: roleAssistant, text: locale.Message(lang, locale.MsgChatGreeting)},
		},
	}
}

func newChatRenderer(styles ui.Styles, width int) *glamour.TermRenderer {
	style := "light"
	if styles.Theme.IsDark {
		style = "dark"
	}
	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	return r
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
	)
}

// waitForEvent pumps the next streaming event from the turn goroutine into
// the bubbletea loop.
func waitForEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// turnStreamer runs one chat turn, reporting partial text through onChunk.
type turnStreamer func(ctx context.Context, onChunk func(string)) (string, error)

// pumpTurn runs one turn and forwards its chunk and completion events into
// the update loop. Every send also watches ctx so an abandoned turn (the
// user quit mid-stream and nothing drains the channel) still unwinds.
func pumpTurn(ctx context.Context, events chan<- tea.Msg, stream turnStreamer) {
	full, err := stream(ctx, func(partial string) {
		select {
		case events <- streamChunkMsg(partial):
		case <-ctx.Done():
		}
	})
	select {
	case events <- streamDoneMsg{full: full, err: err}:
	case <-ctx.Done():
		// The turn was cancelled. A live reader (request timeout) still
		// gets the completion if the buffer has room; an abandoned one
		// must not block teardown.
		select {
		case events <- streamDoneMsg{full: full, err: err}:
		default:
		}
	}
	close(events)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.turnCancel != nil {
				m.turnCancel()
			}
			return m, tea.Quit
		case tea.KeyEnter:
			if !m.streaming {
				return m.sendTurn()
			}
		}
		m.textinput, tiCmd = m.textinput.Update(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 1
		inputHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-headerHeight-footerHeight-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - headerHeight - footerHeight - inputHeight
		}
		m.textinput.Width = msg.Width - 4
		m.renderer = newChatRenderer(m.styles, msg.Width-8)
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.streaming {
			m.spinner, spCmd = m.spinner.Update(msg)
		}

	case streamChunkMsg:
		if n := len(m.history); n > 0 && m.history[n-1].role == roleAssistant {
			m.history[n-1].text = string(msg)
		}
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, waitForEvent(m.events)

	case streamDoneMsg:
		m.streaming = false
		m.turnCancel = nil
		if msg.err != nil {
			logger.Error("chat turn failed", zap.Error(msg.err))
			if n := len(m.history); n > 0 && m.history[n-1].role == roleAssistant {
				m.history[n-1].text = advisor.UserMessage(msg.err, locale.Message(m.lang, locale.MsgChatFailed))
			}
		} else if n := len(m.history); n > 0 && m.history[n-1].role == roleAssistant {
			m.history[n-1].text = msg.full
		}
		if !m.hinted && app.Feedback.ShouldPrompt(feedback.FeatureChatbot) {
			hint := fmt.Sprintf(locale.Message(m.lang, locale.MsgFeedbackAsk), feedback.FeatureChatbot)
			m.history = append(m.history, chatEntry{role: roleSystem, text: hint})
			m.hinted = true
		}
		m.textinput.Focus()
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
	}

	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

// sendTurn dispatches the typed message as one chat turn and starts
// streaming the reply.
func (m chatModel) sendTurn() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textinput.Value())
	if input == "" {
		return m, nil
	}

	m.history = append(m.history,
		chatEntry{role: roleUser, text: input},
		chatEntry{role: roleAssistant, text: ""},
	)
	m.textinput.Reset()
	m.textinput.Blur()
	m.streaming = true
	m.events = make(chan tea.Msg, 8)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	m.turnCancel = cancel

	events := m.events
	client := m.client
	lang := m.lang
	go func() {
		defer cancel()
		pumpTurn(ctx, events, func(ctx context.Context, onChunk func(string)) (string, error) {
			return client.StreamChat(ctx, lang, input, onChunk)
		})
	}()

	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()

	return m, tea.Batch(m.spinner.Tick, waitForEvent(m.events))
}

func (m chatModel) renderHistory() string {
	var sb strings.Builder
	for _, e := range m.history {
		switch e.role {
		case roleUser:
			sb.WriteString(m.styles.Prompt.Render("You: ") + m.styles.UserInput.Render(e.text))
			sb.WriteString("\n")
		case roleSystem:
			sb.WriteString(m.styles.Muted.Render(e.text))
			sb.WriteString("\n")
		default:
			text := e.text
			if text == "" {
				text = "..."
			}
			if m.renderer != nil {
				if rendered, err := m.renderer.Render(text); err == nil {
					text = strings.TrimRight(rendered, "\n") + "\n"
				}
			}
			sb.WriteString(m.styles.AgentResponse.Render(text))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m chatModel) View() string {
	if !m.ready {
		return ui.Logo(m.styles) + "\n" + m.styles.Subtitle.Render("Starting Agri AI...")
	}

	header := m.styles.Header.Render("AgriBot")
	status := ""
	if m.streaming {
		status = " " + m.spinner.View() + m.styles.Muted.Render(" thinking...")
	}

	divider := m.styles.RenderDivider(m.width)

	return fmt.Sprintf("%s%s\n%s\n%s\n%s\n%s",
		header,
		status,
		m.viewport.View(),
		divider,
		m.textinput.View(),
		m.styles.Footer.Render("Enter to send  ·  Ctrl+C to exit"),
	)
}

// runInteractiveChat launches the chat TUI.
func runInteractiveChat() error {
	if err := requireLogin(); err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newAdvisorClient(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newChatModel(client, app.Lang), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat interface failed: %w", err)
	}
	return nil
}
