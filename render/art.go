package render

import (
	"bufio"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/lixenwraith/demon-diapers/engine"
)

// variants holds one background, normal and haunted
type variants struct {
	normal  []string
	haunted []string
}

// pick returns the haunted variant when asked for and present, else the normal one
func (v variants) pick(haunted bool) []string {
	if haunted && v.haunted != nil {
		return v.haunted
	}
	return v.normal
}

type sceneKey struct {
	room  engine.Room
	chore string
}

// ArtSet holds optional ASCII backgrounds per room, plus chore scenes shown while a chore
// is Active in the viewed room
type ArtSet struct {
	rooms  [engine.RoomCount]variants
	scenes map[sceneKey]variants
}

// ChoreKey turns a chore name into its art file key: "Wash Dishes" -> "wash_dishes"
func ChoreKey(name string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if b.Len() > 0 && !underscore {
			b.WriteByte('_')
			underscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// LoadArt reads <dir>/<room>.txt and <dir>/<room>_haunted.txt for every room, and
// <dir>/<room>_<chore>.txt and <dir>/<room>_<chore>_haunted.txt for every chore.
// A chore without a valid room is looked up in every room.
// Missing or unreadable files fall back to the room art, then to a plain fill.
func LoadArt(dir string, chores ...engine.ChoreSpec) *ArtSet {
	a := &ArtSet{scenes: make(map[sceneKey]variants)}
	if dir == "" {
		return a
	}
	for room := engine.Room(0); room < engine.RoomCount; room++ {
		a.rooms[room] = readVariants(dir, room.Key())
	}

	for _, spec := range chores {
		key := ChoreKey(spec.Name)
		if key == "" {
			continue
		}
		rooms := []engine.Room{spec.Room}
		if !spec.Room.Valid() {
			rooms = rooms[:0]
			for room := engine.Room(0); room < engine.RoomCount; room++ {
				rooms = append(rooms, room)
			}
		}
		for _, room := range rooms {
			v := readVariants(dir, room.Key()+"_"+key)
			if v.normal != nil || v.haunted != nil {
				a.scenes[sceneKey{room, key}] = v
			}
		}
	}
	return a
}

func readVariants(dir, base string) variants {
	return variants{
		normal:  readArt(filepath.Join(dir, base+".txt")),
		haunted: readArt(filepath.Join(dir, base+"_haunted.txt")),
	}
}

func readArt(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[render] art %s: %v", path, err)
		}
		return nil
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Printf("[render] art %s: %v", path, err)
		return nil
	}
	return lines
}

// Lines returns the art for a room, preferring the haunted variant when haunted.
// A haunted room without its own art reuses the normal art in darker colors.
func (a *ArtSet) Lines(room engine.Room, haunted bool) []string {
	if a == nil || !room.Valid() {
		return nil
	}
	return a.rooms[room].pick(haunted)
}

// SceneLines returns the chore scene for a chore in room, falling back to the room art.
// Order: haunted scene, scene, haunted room, room.
func (a *ArtSet) SceneLines(room engine.Room, chore string, haunted bool) []string {
	if a == nil || !room.Valid() {
		return nil
	}
	if v, ok := a.scenes[sceneKey{room, ChoreKey(chore)}]; ok {
		if lines := v.pick(haunted); lines != nil {
			return lines
		}
	}
	return a.Lines(room, haunted)
}
