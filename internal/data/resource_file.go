package data

// ResourceFile holds the resource keys found in a single localization file
type ResourceFile struct {
	Path string
	// Keys contains every name found in the file
	Keys KeySet
	// DuplicateKeys contains names that were found more than once.
	// It is always a subset of Keys.
	DuplicateKeys KeySet
}

func NewResourceFile(path string) *ResourceFile {
	return &ResourceFile{
		Path:          path,
		Keys:          KeySet{},
		DuplicateKeys: KeySet{},
	}
}

// AddKey records a key, marking it as duplicate if it has been seen before
func (file *ResourceFile) AddKey(key string) {
	if file.Keys.Contains(key) {
		file.DuplicateKeys.Add(key)
	}
	file.Keys.Add(key)
}

func (file *ResourceFile) HasDuplicates() bool {
	return !file.DuplicateKeys.IsEmpty()
}
