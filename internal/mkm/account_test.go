package mkm_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mkm/internal/mkm"
	"github.com/donaldgifford/mkm/internal/mkm/mocks"
)

const accountBody = `{
  "account": {
    "idUser": 1234,
    "username": "cardshark",
    "country": "D",
    "isCommercial": 0,
    "maySell": true,
    "reputation": 2,
    "onVacation": false,
    "idDisplayLanguage": "1",
    "name": {"firstName": "Ada", "lastName": "Lovelace"},
    "moneyDetails": {"totalBalance": 12.5, "moneyBalance": 12.5},
    "unreadMessages": 3
  }
}`

func TestClient_GetAccount(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)
	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		Get(mock.Anything, testBaseURL+"/account").
		Return(response(http.StatusOK, accountBody), nil)

	acc, err := c.GetAccount(t.Context(), sess)
	require.NoError(t, err)
	require.NotNil(t, acc)

	assert.Equal(t, 1234, acc.IDUser)
	assert.Equal(t, "cardshark", acc.Username)
	assert.True(t, acc.MaySell)
	assert.Equal(t, "1", acc.IDDisplayLanguage.String())
	require.NotNil(t, acc.Name)
	assert.Equal(t, "Ada", acc.Name.FirstName)
	require.NotNil(t, acc.MoneyDetails)
	assert.InDelta(t, 12.5, acc.MoneyDetails.TotalBalance, 0.001)
	assert.Equal(t, 3, acc.UnreadMessages)
}

func TestClient_GetAccount_MissingEnvelope(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)
	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		Get(mock.Anything, mock.Anything).
		Return(response(http.StatusOK, `{"idUser": 1}`), nil)

	_, err := c.GetAccount(t.Context(), sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no "account" field`)
}

func TestClient_SetVacationStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		onVacation bool
		wantURL    string
		body       string
		wantMsg    string
	}{
		{
			name:       "on vacation",
			onVacation: true,
			wantURL:    testBaseURL + "/account/vacation?onVacation=true",
			body: `{"message":"Successfully set the account on vacation.",` +
				`"account":{"idUser":1234,"onVacation":true}}`,
			wantMsg: "Successfully set the account on vacation.",
		},
		{
			name:       "back from vacation",
			onVacation: false,
			wantURL:    testBaseURL + "/account/vacation?onVacation=false",
			body: `{"message":"Successfully removed the vacation status.",` +
				`"account":{"idUser":1234,"onVacation":false}}`,
			wantMsg: "Successfully removed the vacation status.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t)
			sess := mocks.NewMockSession(t)
			sess.EXPECT().
				Put(mock.Anything, tt.wantURL, mock.Anything).
				Return(response(http.StatusOK, tt.body), nil)

			res, err := c.SetVacationStatus(t.Context(), sess, tt.onVacation)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Equal(t, tt.onVacation, res.Account.OnVacation)
		})
	}
}

func TestClient_SetVacationStatus_Unauthorized(t *testing.T) {
	t.Parallel()

	c, buf := newTestClient(t)
	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		Put(mock.Anything, mock.Anything, mock.Anything).
		Return(response(http.StatusUnauthorized, ""), nil)

	res, err := c.SetVacationStatus(t.Context(), sess, true)
	require.ErrorIs(t, err, mkm.ErrUnauthorized)
	assert.Nil(t, res)
	assert.NotEmpty(t, buf.errorRecords(t))
}

func TestClient_SetDisplayLanguage(t *testing.T) {
	t.Parallel()

	code, err := mkm.LanguageCode("German")
	require.NoError(t, err)

	c, _ := newTestClient(t)
	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		Put(mock.Anything, testBaseURL+"/account/language?idDisplayLanguage=3", mock.Anything).
		Return(response(http.StatusOK, `{"account":{"idUser":1234,"idDisplayLanguage":"3"}}`), nil)

	acc, err := c.SetDisplayLanguage(t.Context(), sess, code)
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, "3", acc.IDDisplayLanguage.String())
}
