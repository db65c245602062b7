package desktop

// Recorder is an in-memory Clipboard and Browser, used by tests and by
// front-ends running without a desktop session.
type Recorder struct {
	Copied []string
	Opened []string
	Err    error
}

// WriteAll records text, or returns r.Err if set.
func (r *Recorder) WriteAll(text string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Copied = append(r.Copied, text)
	return nil
}

// OpenURL records url, or returns r.Err if set.
func (r *Recorder) OpenURL(url string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Opened = append(r.Opened, url)
	return nil
}

// LastCopied returns the most recent copied text.
func (r *Recorder) LastCopied() string {
	if len(r.Copied) == 0 {
		return ""
	}
	return r.Copied[len(r.Copied)-1]
}
