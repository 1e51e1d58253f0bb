package utils

import (
	"reflect"
	"testing"

	"github.com/decker502/slingshot/pkg/gameplay"
)

func TestPointerTranslator(t *testing.T) {
	pt := &PointerTranslator{}

	frames := []struct {
		name   string
		sample PointerSample
		want   []gameplay.PointerEvent
	}{
		{
			name:   "first frame reports position",
			sample: PointerSample{X: 10, Y: 20},
			want:   []gameplay.PointerEvent{{Action: gameplay.PointerMoved, X: 10, Y: 20}},
		},
		{
			name:   "idle frame is silent",
			sample: PointerSample{X: 10, Y: 20},
			want:   nil,
		},
		{
			name:   "press",
			sample: PointerSample{JustPressed: true, X: 300, Y: 700},
			want:   []gameplay.PointerEvent{{Action: gameplay.PointerPressed, X: 300, Y: 700}},
		},
		{
			name:   "drag",
			sample: PointerSample{X: 250, Y: 760},
			want:   []gameplay.PointerEvent{{Action: gameplay.PointerMoved, X: 250, Y: 760}},
		},
		{
			name:   "release after move",
			sample: PointerSample{JustReleased: true, X: 240, Y: 770},
			want: []gameplay.PointerEvent{
				{Action: gameplay.PointerMoved, X: 240, Y: 770},
				{Action: gameplay.PointerReleased, X: 240, Y: 770},
			},
		},
		{
			name:   "release in place",
			sample: PointerSample{JustPressed: true, JustReleased: true, X: 240, Y: 770},
			want: []gameplay.PointerEvent{
				{Action: gameplay.PointerPressed, X: 240, Y: 770},
				{Action: gameplay.PointerReleased, X: 240, Y: 770},
			},
		},
	}

	for _, f := range frames {
		got := pt.Translate(f.sample)
		if !reflect.DeepEqual(got, f.want) {
			t.Errorf("%s: Translate() = %+v, want %+v", f.name, got, f.want)
		}
	}
}

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		name   string
		sample KeySample
		want   []gameplay.KeyEvent
	}{
		{"idle", KeySample{}, nil},
		{"press", KeySample{JustPressed: true}, []gameplay.KeyEvent{
			{Key: gameplay.KeyConfirm, Action: gameplay.KeyPressed},
		}},
		{"release", KeySample{JustReleased: true}, []gameplay.KeyEvent{
			{Key: gameplay.KeyConfirm, Action: gameplay.KeyReleased},
		}},
		{"tap within one tick", KeySample{JustPressed: true, JustReleased: true}, []gameplay.KeyEvent{
			{Key: gameplay.KeyConfirm, Action: gameplay.KeyPressed},
			{Key: gameplay.KeyConfirm, Action: gameplay.KeyReleased},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeyEvents(gameplay.KeyConfirm, tt.sample)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("KeyEvents() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
