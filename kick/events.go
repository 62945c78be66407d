package kick

// NoteEvent is a note-on inside a render block. Offset is the sample
// position in the block; all events of a block are applied at its start,
// in slice order.
type NoteEvent struct {
	Offset int
	Note   int
}

// validNote reports whether note is a MIDI note number.
func validNote(note int) bool { return note >= 0 && note <= 127 }
