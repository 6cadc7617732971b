package encryption_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/pkg/encryption"
)

// generateTestKey creates a valid 32-byte key for testing.
func generateTestKey(t *testing.T) string {
	t.Helper()
	key, err := encryption.GenerateKey()
	require.NoError(t, err)
	return key
}

func TestNewAESEncryptor_ValidKey(t *testing.T) {
	key := generateTestKey(t)

	encryptor, err := encryption.NewAESEncryptor(key)

	require.NoError(t, err)
	assert.NotNil(t, encryptor)
}

func TestNewAESEncryptor_RawKey(t *testing.T) {
	encryptor, err := encryption.NewAESEncryptor("0123456789abcdef0123456789abcdef")

	require.NoError(t, err)
	assert.NotNil(t, encryptor)
}

func TestNewAESEncryptor_InvalidKeyLength(t *testing.T) {
	encryptor, err := encryption.NewAESEncryptor("tooshort!!!")

	assert.Error(t, err)
	assert.Nil(t, encryptor)
	assert.Contains(t, err.Error(), "must be 32 bytes")
}

func TestAESEncryptor_EncryptDecryptString(t *testing.T) {
	key := generateTestKey(t)
	encryptor, err := encryption.NewAESEncryptor(key)
	require.NoError(t, err)

	plaintext := "smtp app password"

	ciphertext, err := encryptor.EncryptString(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := encryptor.DecryptString(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestAESEncryptor_EncryptString_UniqueNonce(t *testing.T) {
	key := generateTestKey(t)
	encryptor, err := encryption.NewAESEncryptor(key)
	require.NoError(t, err)

	first, err := encryptor.EncryptString("same plaintext")
	require.NoError(t, err)
	second, err := encryptor.EncryptString("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAESEncryptor_DecryptString_InvalidCiphertext(t *testing.T) {
	key := generateTestKey(t)
	encryptor, err := encryption.NewAESEncryptor(key)
	require.NoError(t, err)

	_, err = encryptor.DecryptString("not-valid-base64!!!")
	assert.Error(t, err)
}

func TestAESEncryptor_DecryptString_WrongKey(t *testing.T) {
	first, err := encryption.NewAESEncryptor(generateTestKey(t))
	require.NoError(t, err)
	second, err := encryption.NewAESEncryptor(generateTestKey(t))
	require.NoError(t, err)

	ciphertext, err := first.EncryptString("secret")
	require.NoError(t, err)

	_, err = second.DecryptString(ciphertext)
	assert.Error(t, err)
}

func TestNoOpEncryptor_PassThrough(t *testing.T) {
	encryptor := encryption.NewNoOpEncryptor()

	ciphertext, err := encryptor.EncryptString("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", ciphertext)

	plaintext, err := encryptor.DecryptString("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", plaintext)
}
