package props

// Transform rewrites property values between their stored and in-memory
// forms. OnPropertyRead is applied when a file is loaded and
// OnPropertyWrite when it is saved. A transform should pass through values
// it does not recognize unchanged, and OnPropertyWrite should invert
// OnPropertyRead for values it does recognize.
type Transform interface {
	OnPropertyRead(key, stored string) (string, error)
	OnPropertyWrite(key, value string) (string, error)
}

// TransformFuncs adapts a pair of functions to a Transform. A nil function
// leaves values unchanged.
type TransformFuncs struct {
	Read  func(key, stored string) (string, error)
	Write func(key, value string) (string, error)
}

func (f TransformFuncs) OnPropertyRead(key, stored string) (string, error) {
	if f.Read == nil {
		return stored, nil
	}
	return f.Read(key, stored)
}

func (f TransformFuncs) OnPropertyWrite(key, value string) (string, error) {
	if f.Write == nil {
		return value, nil
	}
	return f.Write(key, value)
}

// applyRead runs value through every transform's OnPropertyRead in list order.
func applyRead(transforms []Transform, key, value string) (string, error) {
	for _, t := range transforms {
		v, err := t.OnPropertyRead(key, value)
		if err != nil {
			return "", &TransformError{Key: key, Op: "read", Err: err}
		}
		value = v
	}
	return value, nil
}

// applyWrite runs value through every transform's OnPropertyWrite in list order.
func applyWrite(transforms []Transform, key, value string) (string, error) {
	for _, t := range transforms {
		v, err := t.OnPropertyWrite(key, value)
		if err != nil {
			return "", &TransformError{Key: key, Op: "write", Err: err}
		}
		value = v
	}
	return value, nil
}
