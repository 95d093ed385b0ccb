package tokens

import (
	"strings"
	"testing"
)

func TestNewBudget(t *testing.T) {
	b := NewBudget(8192, 512)

	if b.ContextWindow != 8192 {
		t.Errorf("expected ContextWindow 8192, got %d", b.ContextWindow)
	}
	if b.MaxNewTokens != 512 {
		t.Errorf("expected MaxNewTokens 512, got %d", b.MaxNewTokens)
	}
}

func TestNewBudget_Defaults(t *testing.T) {
	tests := []struct {
		name          string
		contextWindow int
		maxNewTokens  int
		wantWindow    int
		wantNewTokens int
	}{
		{
			name:          "zero context window falls back",
			contextWindow: 0,
			maxNewTokens:  256,
			wantWindow:    DefaultContextWindow,
			wantNewTokens: 256,
		},
		{
			name:          "negative context window falls back",
			contextWindow: -1,
			maxNewTokens:  256,
			wantWindow:    DefaultContextWindow,
			wantNewTokens: 256,
		},
		{
			name:          "negative max new tokens clamps to zero",
			contextWindow: 4096,
			maxNewTokens:  -100,
			wantWindow:    4096,
			wantNewTokens: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBudget(tt.contextWindow, tt.maxNewTokens)
			if b.ContextWindow != tt.wantWindow {
				t.Errorf("ContextWindow = %d, expected %d", b.ContextWindow, tt.wantWindow)
			}
			if b.MaxNewTokens != tt.wantNewTokens {
				t.Errorf("MaxNewTokens = %d, expected %d", b.MaxNewTokens, tt.wantNewTokens)
			}
		})
	}
}

func TestBudget_MaxPrompt(t *testing.T) {
	tests := []struct {
		name          string
		contextWindow int
		maxNewTokens  int
		expected      int
	}{
		{
			name:          "typical split",
			contextWindow: 8192,
			maxNewTokens:  512,
			expected:      7680,
		},
		{
			name:          "no reserved output",
			contextWindow: 4096,
			maxNewTokens:  0,
			expected:      4096,
		},
		{
			name:          "output consumes entire window",
			contextWindow: 2048,
			maxNewTokens:  2048,
			expected:      0,
		},
		{
			name:          "output exceeds window clamps to zero",
			contextWindow: 2048,
			maxNewTokens:  4096,
			expected:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBudget(tt.contextWindow, tt.maxNewTokens)
			if got := b.MaxPrompt(); got != tt.expected {
				t.Errorf("MaxPrompt() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestBudget_Fits(t *testing.T) {
	counter := NewEstimatingCounter()
	b := NewBudget(100, 50) // 50 tokens for the prompt

	short := "hello world" // ~3 tokens
	if !b.Fits(short, counter) {
		t.Errorf("Fits(%q) = false, expected true", short)
	}

	long := strings.Repeat("hello world ", 100) // ~300 tokens
	if b.Fits(long, counter) {
		t.Error("Fits(long text) = true, expected false")
	}
}

func TestMaxPromptTokens(t *testing.T) {
	if got := MaxPromptTokens(8192, 512); got != 7680 {
		t.Errorf("MaxPromptTokens(8192, 512) = %d, expected 7680", got)
	}
	if got := MaxPromptTokens(0, 512); got != DefaultContextWindow-512 {
		t.Errorf("MaxPromptTokens(0, 512) = %d, expected %d", got, DefaultContextWindow-512)
	}
}
