package repository

import (
	"errors"
	"testing"

	"farmagest/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestCursorRoundTrip(t *testing.T) {
	lastKey := map[string]types.AttributeValue{
		"usuario_id":   &types.AttributeValueMemberS{Value: "user-1"},
		"id":           &types.AttributeValueMemberS{Value: "orc-9"},
		"data_criacao": &types.AttributeValueMemberS{Value: "2026-02-05T10:00:00Z"},
	}

	cursor, err := encodeCursor(lastKey)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if cursor == "" {
		t.Fatal("expected a non-empty cursor")
	}

	decoded, err := decodeCursor(cursor)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	for k, v := range lastKey {
		s := v.(*types.AttributeValueMemberS)
		got, ok := decoded[k].(*types.AttributeValueMemberS)
		if !ok || got.Value != s.Value {
			t.Fatalf("expected %s=%q round-tripped, got %v", k, s.Value, decoded[k])
		}
	}
}

func TestEncodeCursor_EmptyKey(t *testing.T) {
	cursor, err := encodeCursor(nil)
	if err != nil || cursor != "" {
		t.Fatalf("expected empty cursor for exhausted listing, got %q err %v", cursor, err)
	}
}

func TestDecodeCursor_Invalid(t *testing.T) {
	t.Run("empty cursor means first page", func(t *testing.T) {
		startKey, err := decodeCursor("")
		if err != nil || startKey != nil {
			t.Fatalf("expected nil start key, got %v err %v", startKey, err)
		}
	})

	t.Run("garbage base64", func(t *testing.T) {
		_, err := decodeCursor("%%%not-base64%%%")
		if !errors.Is(err, interfaces.ErrCursorInvalido) {
			t.Fatalf("expected ErrCursorInvalido, got %v", err)
		}
	})

	t.Run("valid base64 but not json", func(t *testing.T) {
		_, err := decodeCursor("bm90LWpzb24")
		if !errors.Is(err, interfaces.ErrCursorInvalido) {
			t.Fatalf("expected ErrCursorInvalido, got %v", err)
		}
	})
}
