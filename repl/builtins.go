package repl

import (
	"fmt"

	"go.starlark.net/starlark"

	"gopruino/core"
)

// builtins exposes the HAL's time and serial surface to scripts
func (in *Interpreter) builtins() starlark.StringDict {
	return starlark.StringDict{
		"now":          starlark.NewBuiltin("now", in.now),
		"set_time":     starlark.NewBuiltin("set_time", in.setTime),
		"delay_us":     starlark.NewBuiltin("delay_us", in.delayUS),
		"ms_to_ticks":  starlark.NewBuiltin("ms_to_ticks", msToTicks),
		"ticks_to_ms":  starlark.NewBuiltin("ticks_to_ms", ticksToMS),
		"serial_stats": starlark.NewBuiltin("serial_stats", in.serialStats),
		"reset":        starlark.NewBuiltin("reset", in.reset),
		"kill":         starlark.NewBuiltin("kill", in.kill),
	}
}

func (in *Interpreter) now(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.MakeInt64(int64(in.hal.Now())), nil
}

func (in *Interpreter) setTime(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var t starlark.Int
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "ticks", &t); err != nil {
		return nil, err
	}
	ticks, ok := t.Int64()
	if !ok {
		return nil, fmt.Errorf("%s: ticks out of range", fn.Name())
	}
	in.hal.SetTime(core.Ticks(ticks))
	return starlark.None, nil
}

func (in *Interpreter) delayUS(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var us int
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "us", &us); err != nil {
		return nil, err
	}
	in.hal.DelayMicroseconds(us)
	return starlark.None, nil
}

func msToTicks(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "ms", &v); err != nil {
		return nil, err
	}
	ms, ok := starlark.AsFloat(v)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want number", fn.Name(), v.Type())
	}
	return starlark.MakeInt64(int64(core.TicksFromMilliseconds(ms))), nil
}

func ticksToMS(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var t starlark.Int
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "ticks", &t); err != nil {
		return nil, err
	}
	ticks, ok := t.Int64()
	if !ok {
		return nil, fmt.Errorf("%s: ticks out of range", fn.Name())
	}
	return starlark.Float(core.MillisecondsFromTicks(core.Ticks(ticks))), nil
}

func (in *Interpreter) serialStats(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	stats := in.hal.Serial.Stats()
	d := starlark.NewDict(5)
	_ = d.SetKey(starlark.String("sent"), starlark.MakeUint64(uint64(stats.Sent)))
	_ = d.SetKey(starlark.String("received"), starlark.MakeUint64(uint64(stats.Received)))
	_ = d.SetKey(starlark.String("errors"), starlark.MakeUint64(uint64(stats.Errors)))
	_ = d.SetKey(starlark.String("traps"), starlark.MakeUint64(uint64(stats.Traps)))
	_ = d.SetKey(starlark.String("dropped"), starlark.MakeUint64(uint64(in.rx.Dropped())))
	return d, nil
}

func (in *Interpreter) reset(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	in.hal.Reset()
	in.Reset()
	return starlark.None, nil
}

func (in *Interpreter) kill(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	in.hal.Kill()
	return starlark.None, nil
}
