// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package description implements the SDP session description model used to
// negotiate real-time peer connections: offers, answers, their media and data
// channel sections, and the transport candidates advertised with them.
package description

import (
	"fmt"

	"github.com/pion/description/pkg/candidate"
	"github.com/pion/logging"
)

// Description is a session description under negotiation: the session-level
// attributes, the ordered m= sections and the candidates gathered so far.
//
// A Description is owned by a single negotiation flow; it is not safe for
// concurrent use.
type Description struct {
	typ  Type
	role Role

	username  string
	sessionID string

	iceUfrag    string
	icePwd      string
	fingerprint string

	entries     []Entry
	application *Application

	candidates []candidate.Candidate
	ended      bool

	loggerFactory logging.LoggerFactory
	log           logging.LeveledLogger
}

// New creates an empty description, ready for entries and candidates.
func New(options ...func(*Description)) *Description {
	d := &Description{
		role:     RoleActPass,
		username: "-",
	}

	for _, o := range options {
		o(d)
	}

	if d.loggerFactory == nil {
		d.loggerFactory = logging.NewDefaultLoggerFactory()
	}
	d.log = d.loggerFactory.NewLogger("sdp")

	if d.sessionID == "" {
		d.sessionID = newSessionID(d.log)
	}

	return d
}

// WithType sets the negotiation stage the description represents.
func WithType(t Type) func(*Description) {
	return func(d *Description) {
		d.typ = t
	}
}

// WithTypeString sets the type from its string form; a string naming no known
// type leaves the description unspecified.
func WithTypeString(raw string) func(*Description) {
	return func(d *Description) {
		d.typ = NewType(raw)
	}
}

// WithRole sets the DTLS role advertised in the a=setup attribute.
func WithRole(role Role) func(*Description) {
	return func(d *Description) {
		d.role = role
	}
}

// WithLoggerFactory configures logging for the description and its sections.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) func(*Description) {
	return func(d *Description) {
		d.loggerFactory = loggerFactory
	}
}

// Type returns the negotiation stage of the description.
func (d *Description) Type() Type {
	return d.typ
}

// TypeString returns the type in its signaling string form.
func (d *Description) TypeString() string {
	return d.typ.String()
}

// Role returns the advertised DTLS role.
func (d *Description) Role() Role {
	return d.role
}

// BundleMid returns the mid the sections are bundled over: the first entry's
// mid, or "0" before any entry exists.
func (d *Description) BundleMid() string {
	if len(d.entries) > 0 {
		return d.entries[0].Mid()
	}

	return "0"
}

// ICEUfrag returns the session-level ICE username fragment, if any.
func (d *Description) ICEUfrag() (string, bool) {
	return d.iceUfrag, d.iceUfrag != ""
}

// ICEPwd returns the session-level ICE password, if any.
func (d *Description) ICEPwd() (string, bool) {
	return d.icePwd, d.icePwd != ""
}

// Fingerprint returns the certificate fingerprint value, if any.
func (d *Description) Fingerprint() (string, bool) {
	return d.fingerprint, d.fingerprint != ""
}

// Ended reports whether candidate gathering has completed.
func (d *Description) Ended() bool {
	return d.ended
}

// HintType sets the type when it is still unspecified.
func (d *Description) HintType(t Type) {
	if d.typ == Type(Unknown) {
		d.typ = t
	}
}

// SetFingerprint sets the certificate fingerprint advertised for DTLS, as a
// sha-256 hex value.
func (d *Description) SetFingerprint(fingerprint string) {
	d.fingerprint = fingerprint
}

// SetICECredentials sets the session-level ICE username fragment and
// password.
func (d *Description) SetICECredentials(ufrag, pwd string) {
	d.iceUfrag = ufrag
	d.icePwd = pwd
}

// AddCandidate appends a gathered candidate. Duplicates are the caller's
// concern.
func (d *Description) AddCandidate(c candidate.Candidate) {
	d.candidates = append(d.candidates, c)
}

// AddCandidates appends a batch of gathered candidates.
func (d *Description) AddCandidates(candidates []candidate.Candidate) {
	d.candidates = append(d.candidates, candidates...)
}

// EndCandidates marks candidate gathering as complete. Calling it again has
// no effect.
func (d *Description) EndCandidates() {
	d.ended = true
}

// ExtractCandidates moves the stored candidates out of the description: the
// returned slice belongs to the caller, and a second call returns nothing
// until more candidates are added.
func (d *Description) ExtractCandidates() []candidate.Candidate {
	extracted := d.candidates
	d.candidates = nil

	return extracted
}

// defaultCandidate returns the candidate the session-level address fields
// fall back to: the first one marked preferred, else the first stored.
func (d *Description) defaultCandidate() *candidate.Candidate {
	for i := range d.candidates {
		if d.candidates[i].Preferred {
			return &d.candidates[i]
		}
	}
	if len(d.candidates) > 0 {
		return &d.candidates[0]
	}

	return nil
}

// AddMedia appends a media section, returning its index.
func (d *Description) AddMedia(media *Media) (int, error) {
	if d.HasMid(media.Mid()) {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateMid, media.Mid())
	}
	d.entries = append(d.entries, media)

	return len(d.entries) - 1, nil
}

// AddApplicationEntry appends a prebuilt data channel section, returning its
// index. A description holds at most one.
func (d *Description) AddApplicationEntry(app *Application) (int, error) {
	if d.application != nil {
		return 0, ErrDuplicateApplication
	}
	if d.HasMid(app.Mid()) {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateMid, app.Mid())
	}
	d.application = app
	d.entries = append(d.entries, app)

	return len(d.entries) - 1, nil
}

// AddApplication appends a data channel section. Mid is conventionally
// "data".
func (d *Description) AddApplication(mid string) (int, error) {
	return d.AddApplicationEntry(NewApplication(mid))
}

// AddAudio appends an audio section. Mid is conventionally "audio".
func (d *Description) AddAudio(mid string, dir Direction) (int, error) {
	return d.AddMedia(NewAudio(mid, dir))
}

// AddVideo appends a video section. Mid is conventionally "video".
func (d *Description) AddVideo(mid string, dir Direction) (int, error) {
	return d.AddMedia(NewVideo(mid, dir))
}

// Entry returns the section at the given index; callers dispatch on the
// concrete *Media or *Application type.
func (d *Description) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(d.entries) {
		return nil, fmt.Errorf("%w: index %d", ErrEntryNotFound, i)
	}

	return d.entries[i], nil
}

// EntryCount returns the number of m= sections.
func (d *Description) EntryCount() int {
	return len(d.entries)
}

// Application returns the data channel section, or nil when there is none.
func (d *Description) Application() *Application {
	return d.application
}

// HasApplication reports whether a data channel section exists.
func (d *Description) HasApplication() bool {
	return d.application != nil
}

// HasAudioOrVideo reports whether any media section exists.
func (d *Description) HasAudioOrVideo() bool {
	for _, e := range d.entries {
		if _, ok := e.(*Media); ok {
			return true
		}
	}

	return false
}

// HasMid reports whether any section uses the mid.
func (d *Description) HasMid(mid string) bool {
	for _, e := range d.entries {
		if e.Mid() == mid {
			return true
		}
	}

	return false
}
