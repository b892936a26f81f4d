package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_SERVER = "http://localhost:3000"

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
)

type step int

const (
	stepEnteringServer step = iota
	stepLoadingBeacons
	stepBrowsingBeacons
	stepEnteringAddress
	stepEnteringTxPower
	stepEnteringX
	stepEnteringY
	stepSavingBeacon
)

type coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type beacon struct {
	BeaconAddress string       `json:"beaconAddress"`
	TxPower       *int         `json:"txPower,omitempty"`
	Coordinates   *coordinates `json:"coordinates,omitempty"`
}

type model struct {
	step         step
	server       string
	beacons      []beacon
	cursor       int
	draft        beacon
	currentInput string
	message      string
	quitting     bool
}

type beaconsLoadedMsg []beacon
type beaconSavedMsg struct{ addr string }
type beaconDeletedMsg struct{ addr string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{
		step:         stepEnteringServer,
		currentInput: DEFAULT_SERVER,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func loadBeacons(server string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		resp, err := client.Get(server + "/api/v1/beacons")
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("server answered %s", resp.Status)}
		}

		var beacons []beacon
		if err := json.NewDecoder(resp.Body).Decode(&beacons); err != nil {
			return errMsg{fmt.Errorf("bad response: %w", err)}
		}
		return beaconsLoadedMsg(beacons)
	}
}

func saveBeacon(server string, b beacon) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		jsonData, _ := json.Marshal(b)
		resp, err := client.Post(server+"/api/v1/beacons", "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusConflict {
			body, _ := io.ReadAll(resp.Body)
			return errMsg{fmt.Errorf("%s", strings.TrimSpace(string(body)))}
		}
		if resp.StatusCode != http.StatusCreated {
			return errMsg{fmt.Errorf("server answered %s", resp.Status)}
		}
		return beaconSavedMsg{addr: b.BeaconAddress}
	}
}

func deleteBeacon(server, addr string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		req, _ := http.NewRequest(http.MethodDelete, server+"/api/v1/beacons/"+addr, nil)
		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNoContent {
			return errMsg{fmt.Errorf("server answered %s", resp.Status)}
		}
		return beaconDeletedMsg{addr: addr}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case beaconsLoadedMsg:
		m.beacons = msg
		if m.cursor >= len(m.beacons) {
			m.cursor = 0
		}
		m.step = stepBrowsingBeacons
		return m, nil

	case beaconSavedMsg:
		m.message = successStyle.Render(fmt.Sprintf("Registered beacon %s", msg.addr))
		m.step = stepLoadingBeacons
		return m, loadBeacons(m.server)

	case beaconDeletedMsg:
		m.message = successStyle.Render(fmt.Sprintf("Deleted beacon %s", msg.addr))
		m.step = stepLoadingBeacons
		return m, loadBeacons(m.server)

	case errMsg:
		m.message = errorStyle.Render(msg.Error())
		m.step = stepBrowsingBeacons
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	switch m.step {
	case stepEnteringServer:
		return m.handleTextInput(msg, func(value string) (model, tea.Cmd) {
			if value == "" {
				value = DEFAULT_SERVER
			}
			m.server = strings.TrimSuffix(value, "/")
			m.step = stepLoadingBeacons
			return m, loadBeacons(m.server)
		})

	case stepBrowsingBeacons:
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.beacons)-1 {
				m.cursor++
			}
		case "r":
			m.step = stepLoadingBeacons
			return m, loadBeacons(m.server)
		case "a":
			m.draft = beacon{}
			m.currentInput = ""
			m.message = ""
			m.step = stepEnteringAddress
		case "d":
			if len(m.beacons) > 0 {
				return m, deleteBeacon(m.server, m.beacons[m.cursor].BeaconAddress)
			}
		}
		return m, nil

	case stepEnteringAddress:
		return m.handleTextInput(msg, func(value string) (model, tea.Cmd) {
			if value == "" {
				m.message = errorStyle.Render("Beacon address is required")
				return m, nil
			}
			m.draft.BeaconAddress = value
			m.currentInput = ""
			m.step = stepEnteringTxPower
			return m, nil
		})

	case stepEnteringTxPower:
		return m.handleTextInput(msg, func(value string) (model, tea.Cmd) {
			if value != "" {
				txPower, err := strconv.Atoi(value)
				if err != nil {
					m.message = errorStyle.Render("TX power must be an integer")
					return m, nil
				}
				m.draft.TxPower = &txPower
			}
			m.currentInput = ""
			m.step = stepEnteringX
			return m, nil
		})

	case stepEnteringX:
		return m.handleTextInput(msg, func(value string) (model, tea.Cmd) {
			if value == "" {
				// no coordinates for this beacon
				m.step = stepSavingBeacon
				return m, saveBeacon(m.server, m.draft)
			}
			x, err := strconv.Atoi(value)
			if err != nil {
				m.message = errorStyle.Render("X must be an integer")
				return m, nil
			}
			m.draft.Coordinates = &coordinates{X: x}
			m.currentInput = ""
			m.step = stepEnteringY
			return m, nil
		})

	case stepEnteringY:
		return m.handleTextInput(msg, func(value string) (model, tea.Cmd) {
			y, err := strconv.Atoi(value)
			if err != nil {
				m.message = errorStyle.Render("Y must be an integer")
				return m, nil
			}
			m.draft.Coordinates.Y = y
			m.step = stepSavingBeacon
			return m, saveBeacon(m.server, m.draft)
		})
	}

	return m, nil
}

func (m model) handleTextInput(msg tea.KeyMsg, submit func(string) (model, tea.Cmd)) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return submit(strings.TrimSpace(m.currentInput))
	case "backspace":
		if len(m.currentInput) > 0 {
			m.currentInput = m.currentInput[:len(m.currentInput)-1]
		}
	case "esc":
		m.currentInput = ""
		m.message = ""
		m.step = stepBrowsingBeacons
	default:
		if len(msg.String()) == 1 {
			m.currentInput += msg.String()
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Beacon Setup"))
	b.WriteString("\n")

	switch m.step {
	case stepEnteringServer:
		b.WriteString(promptStyle.Render("Server URL: "))
		b.WriteString(inputStyle.Render(m.currentInput))
		b.WriteString("\n\nPress enter to connect")

	case stepLoadingBeacons:
		b.WriteString("Loading beacons...\n")

	case stepBrowsingBeacons:
		if len(m.beacons) == 0 {
			b.WriteString("No beacons registered yet.\n")
		}
		for i, bc := range m.beacons {
			line := bc.BeaconAddress
			if bc.TxPower != nil {
				line += fmt.Sprintf("  tx %d", *bc.TxPower)
			}
			if bc.Coordinates != nil {
				line += fmt.Sprintf("  (%d, %d)", bc.Coordinates.X, bc.Coordinates.Y)
			}
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString(normalStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n[a] add  [d] delete  [r] refresh  [q] quit\n")

	case stepEnteringAddress:
		b.WriteString(promptStyle.Render("Beacon address: "))
		b.WriteString(inputStyle.Render(m.currentInput))
		b.WriteString("\n\nesc to cancel")

	case stepEnteringTxPower:
		b.WriteString(promptStyle.Render("TX power (blank to skip): "))
		b.WriteString(inputStyle.Render(m.currentInput))

	case stepEnteringX:
		b.WriteString(promptStyle.Render("Coordinate x (blank to skip coordinates): "))
		b.WriteString(inputStyle.Render(m.currentInput))

	case stepEnteringY:
		b.WriteString(promptStyle.Render("Coordinate y: "))
		b.WriteString(inputStyle.Render(m.currentInput))

	case stepSavingBeacon:
		b.WriteString("Saving beacon...\n")
	}

	if m.message != "" {
		b.WriteString("\n" + m.message + "\n")
	}
	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
