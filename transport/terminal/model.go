// Package terminal renders a Gomoku session in the terminal. Stones are placed
// with a left mouse click or by moving a cursor with the keyboard.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
	"github.com/rocketscienceinc/gomoku/internal/presenter"
)

const (
	// cellWidth is the number of terminal columns one intersection takes.
	cellWidth = 2
	// boardTop is the screen line of the first board row: title, then a blank line.
	boardTop = 2
)

type gameUseCase interface {
	NewSession(ctx context.Context) (string, entity.Snapshot, error)
	Click(ctx context.Context, id string, row, col int) (entity.Snapshot, gomoku.Outcome, error)
	Restart(ctx context.Context, id string) (entity.Snapshot, error)
	EndSession(ctx context.Context, id string) error
}

type Model struct {
	ctx    context.Context
	logger *slog.Logger
	games  gameUseCase

	id       string
	snapshot entity.Snapshot
	surface  presenter.Surface

	cursorRow int
	cursorCol int

	keys   keyMap
	help   help.Model
	styles styles
	err    error
}

// New starts a session and returns the model playing it.
func New(ctx context.Context, logger *slog.Logger, games gameUseCase) (*Model, error) {
	id, snapshot, err := games.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	size := snapshot.Size

	return &Model{
		ctx:    ctx,
		logger: logger.With("component", "terminal", "id", id),
		games:  games,

		id:       id,
		snapshot: snapshot,
		surface: presenter.Surface{
			Width:  float64(size * cellWidth),
			Height: float64(size),
			Size:   size,
		},

		cursorRow: size / 2,
		cursorCol: size / 2,

		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: defaultStyles(),
	}, nil
}

func (that *Model) Init() tea.Cmd {
	return nil
}

func (that *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		that.help.Width = msg.Width
	case tea.KeyMsg:
		return that, that.handleKey(msg)
	case tea.MouseMsg:
		that.handleMouse(msg)
	}

	return that, nil
}

func (that *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	size := that.snapshot.Size

	switch {
	case key.Matches(msg, that.keys.Quit):
		return tea.Quit
	case key.Matches(msg, that.keys.Up):
		that.cursorRow = max(that.cursorRow-1, 0)
	case key.Matches(msg, that.keys.Down):
		that.cursorRow = min(that.cursorRow+1, size-1)
	case key.Matches(msg, that.keys.Left):
		that.cursorCol = max(that.cursorCol-1, 0)
	case key.Matches(msg, that.keys.Right):
		that.cursorCol = min(that.cursorCol+1, size-1)
	case key.Matches(msg, that.keys.Place):
		that.click(that.cursorRow, that.cursorCol)
	case key.Matches(msg, that.keys.Restart):
		that.restart()
	}

	return nil
}

func (that *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	row, col := that.surface.Cell(float64(msg.X), float64(msg.Y-boardTop))
	that.click(row, col)
}

func (that *Model) click(row, col int) {
	snapshot, outcome, err := that.games.Click(that.ctx, that.id, row, col)
	if errors.Is(err, apperror.ErrOutOfBounds) {
		that.logger.Debug("click outside the board", "row", row, "col", col)
		return
	}

	if err != nil {
		that.logger.Error("failed to click", "error", err)
		that.err = err

		return
	}

	that.snapshot = snapshot
	if outcome != gomoku.OutcomeIgnored {
		that.cursorRow, that.cursorCol = row, col
	}
}

func (that *Model) restart() {
	snapshot, err := that.games.Restart(that.ctx, that.id)
	if err != nil {
		that.logger.Error("failed to restart", "error", err)
		that.err = err

		return
	}

	that.snapshot = snapshot
	that.err = nil
}

func (that *Model) View() string {
	var b strings.Builder

	b.WriteString(that.styles.Title.Render("Gomoku"))
	b.WriteString("\n\n")

	for row, cells := range that.snapshot.Board {
		for col, cell := range cells {
			b.WriteString(that.renderCell(row, col, cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	status := presenter.Status(that.snapshot)
	if that.snapshot.GameOver {
		b.WriteString(that.styles.Won.Render(status))
	} else {
		b.WriteString(that.styles.Status.Render(status))
	}

	if that.err != nil {
		b.WriteString("\n")
		b.WriteString(that.err.Error())
	}

	b.WriteString("\n")
	b.WriteString(that.help.View(that.keys))

	return b.String()
}

func (that *Model) renderCell(row, col int, cell entity.Cell) string {
	var (
		glyph string
		style lipgloss.Style
	)

	switch {
	case cell == entity.BlackCell:
		glyph, style = "●", that.styles.Black
	case cell == entity.WhiteCell:
		glyph, style = "●", that.styles.White
	case presenter.IsStarPoint(that.snapshot.Size, row, col):
		glyph, style = "+", that.styles.Star
	default:
		glyph, style = "·", that.styles.Empty
	}

	if row == that.cursorRow && col == that.cursorCol && !that.snapshot.GameOver {
		style = style.Background(cursorBg)
	}

	return style.Render(glyph + strings.Repeat(" ", cellWidth-1))
}

// Run plays one session until the user quits or ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, games gameUseCase) error {
	model, err := New(ctx, logger, games)
	if err != nil {
		return err
	}

	defer func() {
		if endErr := games.EndSession(context.WithoutCancel(ctx), model.id); endErr != nil {
			logger.Error("failed to end session", "error", endErr)
		}
	}()

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("terminal program failed: %w", err)
	}

	return nil
}
