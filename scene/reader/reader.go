package reader

import (
	"github.com/SummersBrian/cmsc427ps3/asset"
	"github.com/SummersBrian/cmsc427ps3/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from a local file or http/https URL.
func ReadScene(filename string) (*scene.Scene, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return newTextSceneReader().Read(res)
}
