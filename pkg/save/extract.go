package save

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/matzehuels/rimealogy/pkg/world"
)

const (
	// thingPrefix precedes person ids in cross references ("Thing_Human12").
	thingPrefix = "Thing_"

	// personMarker identifies references that point at persons.
	personMarker = "Human"

	// nullRef is the reference text for "no entity".
	nullRef = "null"

	deadState = "Dead"
)

// Paths into the save tree.
const (
	factionsPath = "./world/factionManager/allFactions"
	personsPath  = ".//*[def='" + personMarker + "']"
)

var (
	// ErrNotNameNode is returned when a name element has an unexpected tag.
	ErrNotNameNode = errors.New("given node is not a name node")

	// ErrUnknownNameClass is returned for name classes other than
	// NameTriple and NameSingle.
	ErrUnknownNameClass = errors.New("unknown name class")
)

// Kind identifies the record type an [ExtractError] occurred in.
type Kind string

const (
	KindFaction Kind = "faction"
	KindPerson  Kind = "person"
)

// ExtractError reports a malformed record. ID holds the record's
// identifying field when it had been read before the failure, or "".
type ExtractError struct {
	Kind Kind
	ID   string
	Err  error
}

func (e *ExtractError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %v", e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// IDKnown reports whether the failing record's id had been read.
func (e *ExtractError) IDKnown() bool { return e.ID != "" }

// Records holds the entities extracted from one document.
type Records struct {
	Factions []*world.Faction
	Persons  []*world.Person
}

// Extract converts every faction and person record of doc.
// It stops at the first malformed record.
func Extract(doc *etree.Document) (*Records, error) {
	game, err := Game(doc)
	if err != nil {
		return nil, err
	}

	recs := &Records{}
	if all := game.FindElement(factionsPath); all != nil {
		for _, el := range all.ChildElements() {
			f, err := ExtractFaction(el)
			if err != nil {
				return nil, err
			}
			recs.Factions = append(recs.Factions, f)
		}
	}

	for _, el := range game.FindElements(personsPath) {
		p, err := ExtractPerson(el)
		if err != nil {
			return nil, err
		}
		recs.Persons = append(recs.Persons, p)
	}
	return recs, nil
}

// ExtractFaction converts one allFactions entry.
func ExtractFaction(el *etree.Element) (*world.Faction, error) {
	f := &world.Faction{Relations: make(map[string]int)}
	var id string

	fail := func(err error) (*world.Faction, error) {
		return nil, &ExtractError{Kind: KindFaction, ID: id, Err: err}
	}

	f.Name, _ = text(el, "name")
	if s, _ := text(el, "loadID"); s != "" {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fail(fmt.Errorf("loadID: %w", err))
		}
		f.ID = n
	}
	id = strconv.Itoa(f.ID)
	f.Def, _ = text(el, "def")
	f.Leader = stripRef(mustText(el, "leader"))

	if rels := el.SelectElement("relations"); rels != nil {
		for _, li := range rels.SelectElements("li") {
			other, _ := text(li, "other")
			goodwill, err := parseGoodwill(mustText(li, "goodwill"))
			if err != nil {
				return fail(fmt.Errorf("goodwill toward %s: %w", other, err))
			}
			f.Relations[other] = goodwill
		}
	}
	return f, nil
}

// ExtractPerson converts one person record.
func ExtractPerson(el *etree.Element) (*world.Person, error) {
	p := &world.Person{}
	p.ID, _ = text(el, "id")

	fail := func(err error) (*world.Person, error) {
		return nil, &ExtractError{Kind: KindPerson, ID: p.ID, Err: err}
	}

	state, _ := text(el, "healthTracker/healthState")
	p.Alive = state != deadState

	name, err := ExtractName(el.SelectElement("name"))
	if err != nil {
		return fail(err)
	}
	p.Name = name

	p.Def, _ = text(el, "def")
	p.KindDef, _ = text(el, "kindDef")
	p.Gender = world.DefaultGender
	if g, _ := text(el, "gender"); g != "" {
		p.Gender = g
	}
	p.Faction = world.NoFaction
	if fac, ok := text(el, "faction"); ok {
		p.Faction = fac
	}

	social := el.SelectElement("social")
	if social == nil {
		p.Seen = true
		return p, nil
	}
	seen, _ := text(social, "everSeenByPlayer")
	p.Seen = seen != "False"

	if direct := social.SelectElement("directRelations"); direct != nil {
		for _, li := range direct.ChildElements() {
			rel, ok := extractRelation(li)
			if !ok {
				continue
			}
			if rel.Type == world.ParentRelation {
				p.AddParent(rel.Other)
			} else {
				p.Relations = append(p.Relations, rel)
			}
		}
	}
	return p, nil
}

// extractRelation reads one directRelations entry. Entries whose target
// is not a person are dropped.
func extractRelation(li *etree.Element) (world.Relation, bool) {
	other, _ := text(li, "otherPawn")
	if !strings.Contains(other, personMarker) || len(other) <= len(thingPrefix) {
		return world.Relation{}, false
	}
	typ, _ := text(li, "def")
	return world.Relation{Type: typ, Other: other[len(thingPrefix):]}, true
}

// ExtractName converts a name element. A missing element is the null name.
func ExtractName(el *etree.Element) (world.Name, error) {
	if el == nil {
		return world.NullName(), nil
	}
	if el.Tag != "name" {
		return world.Name{}, fmt.Errorf("%w: <%s>", ErrNotNameNode, el.Tag)
	}
	if el.SelectAttrValue("IsNull", "") == "True" {
		return world.NullName(), nil
	}

	switch class := el.SelectAttrValue("Class", ""); class {
	case world.NameTriple.String():
		return world.TripleName(mustText(el, "first"), mustText(el, "nick"), mustText(el, "last")), nil
	case world.NameSingle.String():
		return world.SingleName(mustText(el, "name")), nil
	default:
		return world.Name{}, fmt.Errorf("%w: %q", ErrUnknownNameClass, class)
	}
}

// text returns the text of the first element matching path and whether
// such an element exists.
func text(el *etree.Element, path string) (string, bool) {
	c := el.FindElement(path)
	if c == nil {
		return "", false
	}
	return c.Text(), true
}

func mustText(el *etree.Element, path string) string {
	s, _ := text(el, path)
	return s
}

// stripRef turns a "Thing_<id>" reference into a bare id. Null and empty
// references become "".
func stripRef(ref string) string {
	if ref == "" || ref == nullRef {
		return ""
	}
	return strings.TrimPrefix(ref, thingPrefix)
}

func parseGoodwill(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
