package preview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/helix-preview/api/pkg/drm"
)

func encodingProperty() *drm.Property {
	return &drm.Property{
		ID:    201,
		Flags: drm.PropEnum,
		Name:  "COLOR_ENCODING",
		Enums: []drm.PropertyEnum{
			{Value: 0, Name: "ITU-R BT.601 YCbCr"},
			{Value: 1, Name: "ITU-R BT.709 YCbCr"},
			{Value: 2, Name: "ITU-R BT.2020 YCbCr"},
		},
	}
}

func rotationProperty() *drm.Property {
	return &drm.Property{
		ID:    202,
		Flags: drm.PropBitmask,
		Name:  "rotation",
		Enums: []drm.PropertyEnum{
			{Value: 0, Name: "rotate-0"},
			{Value: 2, Name: "rotate-180"},
		},
	}
}

func TestSetPlaneProperty(t *testing.T) {
	errIoctl := errors.New("invalid argument")

	tests := []struct {
		name     string
		property string
		value    string
		setup    func(dev *MockDevice)
		wantErr  error
	}{
		{
			name:     "enum value is written",
			property: "COLOR_ENCODING",
			value:    "ITU-R BT.2020 YCbCr",
			setup: func(dev *MockDevice) {
				dev.EXPECT().ObjectProperties(uint32(30), uint32(drm.ObjectPlane)).Return([]uint32{200, 201}, []uint64{0, 1}, nil)
				dev.EXPECT().Property(uint32(200)).Return(&drm.Property{ID: 200, Flags: drm.PropRange, Name: "zpos"}, nil)
				dev.EXPECT().Property(uint32(201)).Return(encodingProperty(), nil)
				dev.EXPECT().SetObjectProperty(uint32(30), uint32(drm.ObjectPlane), uint32(201), uint64(2)).Return(nil)
			},
		},
		{
			name:     "names match by substring",
			property: "ENCODING",
			value:    "2020",
			setup: func(dev *MockDevice) {
				dev.EXPECT().ObjectProperties(uint32(30), uint32(drm.ObjectPlane)).Return([]uint32{201}, []uint64{1}, nil)
				dev.EXPECT().Property(uint32(201)).Return(encodingProperty(), nil)
				dev.EXPECT().SetObjectProperty(uint32(30), uint32(drm.ObjectPlane), uint32(201), uint64(2)).Return(nil)
			},
		},
		{
			name:     "bitmask properties are skipped",
			property: "rotation",
			value:    "rotate-180",
			setup: func(dev *MockDevice) {
				dev.EXPECT().ObjectProperties(uint32(30), uint32(drm.ObjectPlane)).Return([]uint32{202}, []uint64{1}, nil)
				dev.EXPECT().Property(uint32(202)).Return(rotationProperty(), nil)
			},
			wantErr: ErrPropertyNotApplicable,
		},
		{
			name:     "property missing",
			property: "alpha",
			value:    "opaque",
			setup: func(dev *MockDevice) {
				dev.EXPECT().ObjectProperties(uint32(30), uint32(drm.ObjectPlane)).Return([]uint32{201}, []uint64{1}, nil)
				dev.EXPECT().Property(uint32(201)).Return(encodingProperty(), nil)
			},
			wantErr: ErrPropertyNotApplicable,
		},
		{
			name:     "value missing",
			property: "COLOR_ENCODING",
			value:    "BT.2100",
			setup: func(dev *MockDevice) {
				dev.EXPECT().ObjectProperties(uint32(30), uint32(drm.ObjectPlane)).Return([]uint32{201}, []uint64{1}, nil)
				dev.EXPECT().Property(uint32(201)).Return(encodingProperty(), nil)
			},
			wantErr: ErrPropertyNotApplicable,
		},
		{
			name:     "write rejected",
			property: "COLOR_ENCODING",
			value:    "BT.2020",
			setup: func(dev *MockDevice) {
				dev.EXPECT().ObjectProperties(uint32(30), uint32(drm.ObjectPlane)).Return([]uint32{201}, []uint64{1}, nil)
				dev.EXPECT().Property(uint32(201)).Return(encodingProperty(), nil)
				dev.EXPECT().SetObjectProperty(uint32(30), uint32(drm.ObjectPlane), uint32(201), uint64(2)).Return(errIoctl)
			},
			wantErr: errIoctl,
		},
		{
			name:     "properties unreadable",
			property: "rotation",
			value:    "rotate-180",
			setup: func(dev *MockDevice) {
				dev.EXPECT().ObjectProperties(uint32(30), uint32(drm.ObjectPlane)).Return(nil, nil, errIoctl)
			},
			wantErr: ErrPropertyNotApplicable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, dev := newTestManager(t, Config{})
			tt.setup(dev)

			err := m.SetPlaneProperty(30, tt.property, tt.value)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrPropertyNotApplicable)
		})
	}
}

func TestSetPlaneProperty_LeavesBuffersAlone(t *testing.T) {
	m, dev := newTestManager(t, Config{})
	expectPlanes(dev, rgbPlane(30))
	expectDumbBind(dev, 640, 480, 7, 100)

	buf := dumbBuffer(m, 640, 480)
	_, err := m.AddPlane(buf, DumbBuffer)
	require.NoError(t, err)

	dev.EXPECT().ObjectProperties(uint32(30), uint32(drm.ObjectPlane)).Return(nil, nil, nil)

	err = m.SetPlaneProperty(30, "rotation", "rotate-90")
	assert.ErrorIs(t, err, ErrPropertyNotApplicable)
	assert.Equal(t, Bound, buf.State())

	got, ok := m.Buffer(30)
	require.True(t, ok)
	assert.Same(t, buf, got)
}
