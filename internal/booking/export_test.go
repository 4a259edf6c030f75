package booking

// ForgetBooking drops the created booking, as if it had never been stored.
func (w *Workflow) ForgetBooking() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.booking = nil
}
