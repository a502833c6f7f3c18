// Package playback implements the shared media handles behind the play
// controls of a page.
//
// Each page owns exactly two handles: one audio sink and one video sink.
// A handle is a two-state machine, Idle or Playing(id), and every play
// control on the page shares it. Starting playback for a new id implicitly
// stops whatever was playing, since there is only one sink per media kind.
// End-of-playback and playback errors reset the handle to Idle without
// surfacing a user-facing error.
package playback

// Handle is one shared playback sink. At most one id is active at a time.
type Handle interface {
	// Play points the sink at a new source URL and starts playback,
	// implicitly stopping the previous source.
	Play(url, id string) error

	// Stop halts playback and returns the handle to Idle.
	Stop()

	// CurrentID returns the id bound to the sink, or empty when Idle.
	CurrentID() string
}

// Toggle performs the toggle(id) transition shared by every play control:
// clicking the active id stops it, clicking any other id retargets the sink.
// Returns whether the handle ended up playing the given id.
func Toggle(h Handle, id, url string) (bool, error) {
	if h.CurrentID() == id {
		h.Stop()
		return false, nil
	}

	if err := h.Play(url, id); err != nil {
		return false, err
	}
	return true, nil
}
