// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/envint-labs/envint-cli/internal/adapters/driving/tui/styles"
	"github.com/envint-labs/envint-cli/internal/core/domain"
)

// ChunkList displays retrieved evidence chunks in a navigable list.
// It keeps the original retrieval order internally and applies the active
// sort order at render time, so toggling the order never loses state.
type ChunkList struct {
	chunks   []domain.EvidenceChunk
	order    domain.SortOrder
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewChunkList creates a new chunk list component.
func NewChunkList(s *styles.Styles) *ChunkList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ChunkList{
		chunks:   nil,
		order:    domain.SortByRelevanceOrder,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the chunk list.
func (c *ChunkList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (c *ChunkList) Update(msg tea.Msg) (*ChunkList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			c.MoveUp()
		case tea.KeyDown:
			c.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			c.MoveUp()
		case "j":
			c.MoveDown()
		}
	}
	return c, nil
}

// View renders the chunk list in the active sort order.
func (c *ChunkList) View() string {
	if len(c.chunks) == 0 {
		return c.styles.Muted.Render("No sources")
	}

	sorted := c.Sorted()
	lines := make([]string, 0, len(sorted)*2+2)

	header := c.styles.Subtitle.Render(
		fmt.Sprintf("Sources (%d) · sorted by %s", len(sorted), c.order))
	lines = append(lines, header, "")

	// Each chunk takes 2 lines (title + preview)
	visibleCount := (c.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if c.selected >= visibleCount {
		start = c.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(sorted) {
		end = len(sorted)
	}

	for i := start; i < end; i++ {
		lines = append(lines, c.renderChunk(i, &sorted[i]))
	}

	return strings.Join(lines, "\n")
}

// renderChunk formats a single evidence chunk with preview text.
func (c *ChunkList) renderChunk(index int, chunk *domain.EvidenceChunk) string {
	indicator := "  "
	if index == c.selected {
		indicator = "> "
	}

	title := chunk.MetadataString("filename")
	if title == "" {
		title = chunk.ID
	}
	title = domain.DisplayFilename(title)

	maxTitleLen := c.width - 30
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	dept := domain.InferDepartment(*chunk)
	badge := lipgloss.NewStyle().
		Foreground(styles.DepartmentColour(dept)).
		Render("[" + dept + "]")

	score := fmt.Sprintf("%.0f%%", chunk.Score*100)
	if date := chunk.MetadataString("date"); date != "" {
		score += "  " + date
	}

	var titleLine string
	if index == c.selected {
		titleLine = c.styles.Selected.Render(fmt.Sprintf("%s%-*s", indicator, maxTitleLen, title)) +
			" " + badge + "  " + c.styles.Muted.Render(score)
	} else {
		titleLine = c.styles.Normal.Render(fmt.Sprintf("%s%-*s", indicator, maxTitleLen, title)) +
			" " + badge + "  " + c.styles.Muted.Render(score)
	}

	preview := chunk.Content
	maxPreviewLen := c.width - 6
	if maxPreviewLen < 20 {
		maxPreviewLen = 20
	}
	if len(preview) > maxPreviewLen {
		preview = preview[:maxPreviewLen-3] + "..."
	}
	previewLine := c.styles.Muted.Render("    " + preview)

	return titleLine + "\n" + previewLine
}

// SetChunks replaces the list contents and resets the selection.
func (c *ChunkList) SetChunks(chunks []domain.EvidenceChunk) {
	c.chunks = chunks
	c.selected = 0
}

// Chunks returns the chunks in their original retrieval order.
func (c *ChunkList) Chunks() []domain.EvidenceChunk {
	return c.chunks
}

// Sorted returns the chunks in the active sort order.
func (c *ChunkList) Sorted() []domain.EvidenceChunk {
	return domain.Sorted(c.chunks, c.order)
}

// Order returns the active sort order.
func (c *ChunkList) Order() domain.SortOrder {
	return c.order
}

// SetOrder sets the sort order and resets the selection.
func (c *ChunkList) SetOrder(order domain.SortOrder) {
	c.order = order
	c.selected = 0
}

// ToggleOrder flips between relevance and date ordering.
func (c *ChunkList) ToggleOrder() {
	if c.order == domain.SortByRelevanceOrder {
		c.SetOrder(domain.SortByDateOrder)
	} else {
		c.SetOrder(domain.SortByRelevanceOrder)
	}
}

// Selected returns the index of the selected chunk.
func (c *ChunkList) Selected() int {
	return c.selected
}

// SelectedChunk returns the currently selected chunk in display order,
// or nil if the list is empty.
func (c *ChunkList) SelectedChunk() *domain.EvidenceChunk {
	sorted := c.Sorted()
	if len(sorted) == 0 || c.selected < 0 || c.selected >= len(sorted) {
		return nil
	}
	return &sorted[c.selected]
}

// MoveUp moves selection up.
func (c *ChunkList) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves selection down.
func (c *ChunkList) MoveDown() {
	if c.selected < len(c.chunks)-1 {
		c.selected++
	}
}

// SetDimensions sets the component dimensions.
func (c *ChunkList) SetDimensions(width, height int) {
	c.width = width
	c.height = height
}

// Count returns the number of chunks.
func (c *ChunkList) Count() int {
	return len(c.chunks)
}

// IsEmpty returns whether the list is empty.
func (c *ChunkList) IsEmpty() bool {
	return len(c.chunks) == 0
}
