package main

type WPCmd struct {
	Level int `arg:"" name:"level" help:"1=protect, 0=release." type:"int"`
}

func (g *WPCmd) Run(c *Context) error {
	return c.hal.WriteProtect(g.Level != 0)
}

type HoldCmd struct {
	Level int `arg:"" name:"level" help:"1=hold, 0=release." type:"int"`
}

func (g *HoldCmd) Run(c *Context) error {
	return c.hal.Hold(g.Level != 0)
}
