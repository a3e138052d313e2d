package maps

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

const (
	defaultStrength = 1
	defaultMoves    = 12
)

func LoadMazeFile(filename string) (Level, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Level{}, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return Level{}, err
	}

	level, err := ParseLevel(lines)
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", filename, err)
	}
	return level, nil
}

func parseMazeMetaLine(line string) (key, value string) {
	trimmed := strings.TrimSpace(line)
	// Try "key: value" format
	if idx := strings.Index(trimmed, ":"); idx != -1 {
		key = strings.TrimSpace(trimmed[:idx])
		value = strings.TrimSpace(trimmed[idx+1:])
		return
	}
	// Try "key=value" format
	if idx := strings.Index(trimmed, "="); idx != -1 {
		key = strings.TrimSpace(trimmed[:idx])
		value = strings.TrimSpace(trimmed[idx+1:])
		return
	}
	return "", ""
}

// parseStatsHeader accepts the bare "<strength> <moves> [<money>]" header.
func parseStatsHeader(line string, stats *PlayerStats) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return false
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return false
		}
		values[i] = v
	}
	stats.Strength = values[0]
	stats.Moves = values[1]
	if len(values) == 3 {
		stats.Money = values[2]
	}
	return true
}

func ParseLevel(lines []string) (Level, error) {
	stats := PlayerStats{Strength: defaultStrength, Moves: defaultMoves}
	name := ""
	var gridLines []string

	for _, line := range lines {
		// Blank lines inside the grid are rows of floor.
		if len(gridLines) == 0 && strings.TrimSpace(line) == "" {
			continue
		}

		if len(gridLines) == 0 {
			if parseStatsHeader(line, &stats) {
				continue
			}
			if strings.Contains(line, ":") || strings.Contains(line, "=") {
				key, value := parseMazeMetaLine(line)
				switch strings.ToLower(key) {
				case "name":
					name = value
					continue
				case "strength", "moves", "money":
					v, err := strconv.Atoi(value)
					if err != nil {
						return Level{}, fmt.Errorf("invalid %s: %q", key, value)
					}
					switch strings.ToLower(key) {
					case "strength":
						stats.Strength = v
					case "moves":
						stats.Moves = v
					default:
						stats.Money = v
					}
					continue
				}
				return Level{}, fmt.Errorf("unknown maze setting %q", key)
			}
		}

		gridLines = append(gridLines, line)
	}
	for len(gridLines) > 0 && strings.TrimSpace(gridLines[len(gridLines)-1]) == "" {
		gridLines = gridLines[:len(gridLines)-1]
	}

	if len(gridLines) == 0 {
		return Level{}, ErrEmptyMaze
	}
	if stats.Moves <= 0 {
		return Level{}, fmt.Errorf("invalid moves: %d (must be positive)", stats.Moves)
	}
	if stats.Strength < 0 || stats.Money < 0 {
		return Level{}, fmt.Errorf("invalid player stats: strength %d, money %d", stats.Strength, stats.Money)
	}

	width := 0
	for _, line := range gridLines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}

	maze := make(Maze, len(gridLines))
	for i := range maze {
		maze[i] = make([]Tile, width)
	}
	entities := make(Entities)
	player := Position{Row: -1, Col: -1}

	for row, line := range gridLines {
		for col, ch := range []rune(line) {
			pos := Position{Row: row, Col: col}
			switch {
			case ch == ' ':
			case ch == 'W':
				maze[row][col] = Wall
			case ch == 'G':
				maze[row][col] = Goal
			case ch == 'P':
				if player.Row != -1 {
					return Level{}, fmt.Errorf("%w: second player at (%d,%d)", ErrManyPlayers, row, col)
				}
				player = pos
			case ch >= '1' && ch <= '9':
				entities[pos] = Entity{Kind: Crate, Strength: int(ch - '0')}
			case ch == 'S':
				entities[pos] = Entity{Kind: StrengthPotion}
			case ch == 'M':
				entities[pos] = Entity{Kind: MovePotion}
			case ch == 'F':
				entities[pos] = Entity{Kind: FancyPotion}
			case ch == '$':
				entities[pos] = Entity{Kind: Coin}
			default:
				return Level{}, fmt.Errorf("unknown maze character %q at (%d,%d)", ch, row, col)
			}
		}
	}

	level := Level{
		Name:     name,
		Maze:     maze,
		Entities: entities,
		Player:   player,
		Stats:    stats,
	}
	if err := validateLevel(&level); err != nil {
		return Level{}, err
	}
	return level, nil
}

func validateLevel(l *Level) error {
	if l.Player.Row == -1 {
		return ErrNoPlayer
	}

	goals := 0
	for _, row := range l.Maze {
		for _, t := range row {
			if t == Goal {
				goals++
			}
		}
	}
	if goals == 0 {
		return ErrNoGoals
	}

	crates := 0
	for _, e := range l.Entities {
		if e.Kind == Crate {
			crates++
		}
	}
	if crates < goals {
		return fmt.Errorf("%w: %d crates, %d goals", ErrTooFewCrates, crates, goals)
	}
	return nil
}

func (m Maze) Rows() int {
	return len(m)
}

func (m Maze) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < m.Rows() && p.Col < m.Cols()
}

// IsWall reports true for walls and for anything outside the board.
func (m Maze) IsWall(p Position) bool {
	if !m.InBounds(p) {
		return true
	}
	return m[p.Row][p.Col] == Wall
}

func (m Maze) Clone() Maze {
	out := make(Maze, len(m))
	for i, row := range m {
		out[i] = append([]Tile(nil), row...)
	}
	return out
}

func (e Entities) Clone() Entities {
	out := make(Entities, len(e))
	for p, ent := range e {
		out[p] = ent
	}
	return out
}

// Positions returns the occupied positions in row-major order.
func (e Entities) Positions() []Position {
	out := make([]Position, 0, len(e))
	for p := range e {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func (l Level) Clone() Level {
	l.Maze = l.Maze.Clone()
	l.Entities = l.Entities.Clone()
	return l
}
