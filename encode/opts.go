package encode

type DumpOption func(*DumpState)

func DumpColors(c *Colors) DumpOption {
	return func(ds *DumpState) {
		if c == nil {
			ds.Color = nil
			return
		}
		ds.Color = c.Color
	}
}
