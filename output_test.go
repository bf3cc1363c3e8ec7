package d3d11ui

import (
	"errors"
	"testing"
)

func TestTextureIDString(t *testing.T) {
	tests := []struct {
		name string
		id   TextureID
		want string
	}{
		{"managed", ManagedTextureID(3), "Managed(3)"},
		{"user", TextureID{Kind: TextureUser, ID: 0}, "User(0)"},
		{"unknown kind", TextureID{Kind: TextureKind(9), ID: 1}, "Unknown(9)(1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImageValidate(t *testing.T) {
	tests := []struct {
		name    string
		im      Image
		wantErr bool
	}{
		{"valid", Image{Width: 2, Height: 3, Pix: make([]uint8, 24)}, false},
		{"zero width", Image{Width: 0, Height: 3, Pix: nil}, true},
		{"negative height", Image{Width: 2, Height: -1, Pix: nil}, true},
		{"short pixels", Image{Width: 2, Height: 3, Pix: make([]uint8, 23)}, true},
		{"excess pixels", Image{Width: 2, Height: 3, Pix: make([]uint8, 25)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.im.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidImage) {
				t.Errorf("validate() error = %v, want ErrInvalidImage", err)
			}
		})
	}
}

func TestMeshDrawable(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    bool
	}{
		{"empty mesh", nil, false},
		{"single triangle", []uint32{0, 1, 2}, true},
		{"two triangles", []uint32{0, 1, 2, 0, 2, 3}, true},
		{"incomplete triangle", []uint32{0, 1, 2, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Mesh{Indices: tt.indices}
			if got := m.drawable(); got != tt.want {
				t.Errorf("drawable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTexturesDeltaIsEmpty(t *testing.T) {
	if !(TexturesDelta{}).IsEmpty() {
		t.Error("zero delta is not empty")
	}
	d := TexturesDelta{Free: []TextureID{ManagedTextureID(0)}}
	if d.IsEmpty() {
		t.Error("delta with a free entry reported empty")
	}
}
