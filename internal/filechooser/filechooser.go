// Package filechooser provides the file picker used to add channel-list
// files as sources. The picker is built on first use, never ahead of time.
package filechooser

import (
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// Lazy owns a file picker that is constructed the first time it is needed.
// Construction happens at most once; later calls reuse the picker and keep
// its current directory.
type Lazy struct {
	once   sync.Once
	dir    string
	picker filepicker.Model
	builds int
}

// New returns a chooser that will start in dir, or the working directory
// when dir is empty.
func New(dir string) *Lazy {
	return &Lazy{dir: dir}
}

func (l *Lazy) build() {
	l.once.Do(func() {
		dir := l.dir
		if dir == "" {
			if wd, err := os.Getwd(); err == nil {
				dir = wd
			} else {
				dir = "."
			}
		}
		p := filepicker.New()
		p.CurrentDirectory = dir
		p.AllowedTypes = []string{".txt", ".lst", ".csv"}
		p.FileAllowed = true
		p.DirAllowed = false
		l.picker = p
		l.builds++
	})
}

// Built reports whether the picker has been constructed.
func (l *Lazy) Built() bool { return l.builds > 0 }

// Dir returns the directory the picker is showing.
func (l *Lazy) Dir() string {
	l.build()
	return l.picker.CurrentDirectory
}

// Open builds the picker if needed and returns the command that reads its
// directory.
func (l *Lazy) Open() tea.Cmd {
	l.build()
	return l.picker.Init()
}

// Update forwards msg to the picker. When the user picked a file its path is
// returned with ok set.
func (l *Lazy) Update(msg tea.Msg) (cmd tea.Cmd, path string, ok bool) {
	l.build()
	l.picker, cmd = l.picker.Update(msg)
	if ok, path = l.picker.DidSelectFile(msg); ok {
		return cmd, path, true
	}
	return cmd, "", false
}

// View renders the picker.
func (l *Lazy) View() string {
	l.build()
	return l.picker.View()
}
