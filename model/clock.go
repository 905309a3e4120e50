package model

// Counter counts frames since its action last fired.
type Counter int

// Ready reports whether more than threshold frames have passed.
func (c Counter) Ready(threshold int) bool {
	return int(c) > threshold
}

// Trigger fires the gated action if the counter is ready, resetting it.
func (c *Counter) Trigger(threshold int) bool {
	if !c.Ready(threshold) {
		return false
	}
	*c = 0
	return true
}

// Clock rate-limits repeated actions. Every counter advances by one per frame.
type Clock struct {
	LoadFile Counter
	Click    Counter
	Key      Counter
	Gun      Counter
	Damage   Counter
}

func (c *Clock) Tick() {
	c.LoadFile++
	c.Click++
	c.Key++
	c.Gun++
	c.Damage++
}
