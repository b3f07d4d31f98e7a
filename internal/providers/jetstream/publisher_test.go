package jetstream_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-sale/internal/adapter"
	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
	"github.com/feral-file/ff-token-sale/internal/messaging"
	"github.com/feral-file/ff-token-sale/internal/mocks"
	jspublisher "github.com/feral-file/ff-token-sale/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testPublisherMocks struct {
	ctrl    *gomock.Controller
	natsJS  *mocks.MockNatsJetStream
	conn    *mocks.MockNatsConn
	js      *mocks.MockJetStream
	json    *mocks.MockJSON
	config  jspublisher.Config
	created messaging.Publisher
}

func setupTest(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)
	tm := &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
		json:   mocks.NewMockJSON(ctrl),
		config: jspublisher.Config{
			URL:            "nats://localhost:4222",
			StreamName:     "TOKEN_SALE",
			SubjectPrefix:  "token_sale.purchases.",
			MaxReconnects:  3,
			ReconnectWait:  time.Second,
			ConnectionName: "ff-token-sale-test",
		},
	}

	tm.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(tm.conn, tm.js, nil)

	publisher, err := jspublisher.NewPublisher(tm.config, tm.natsJS, tm.json)
	require.NoError(t, err)
	tm.created = publisher

	return tm
}

func testEvent() *messaging.PurchaseStatusEvent {
	return &messaging.PurchaseStatusEvent{
		ID:           "01HZY3K3J7Q5G0Y8W9V7R6T5S4",
		TxHash:       "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060",
		Chain:        domain.ChainEthereumMainnet,
		BuyerAddress: "0xabc0000000000000000000000000000000000001",
		RoundNumber:  1,
		State:        domain.VerificationStateVerified,
		Attempts:     2,
		OccurredAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestPublisher_PublishPurchaseStatus(t *testing.T) {
	tm := setupTest(t)
	ctx := context.Background()
	event := testEvent()
	payload := []byte(`{"state":"verified"}`)

	tm.json.EXPECT().Marshal(event).Return(payload, nil)
	tm.js.EXPECT().
		Publish(ctx, "token_sale.purchases.verified", payload, gomock.Any(), gomock.Any()).
		Return(&jetstream.PubAck{Stream: "TOKEN_SALE", Sequence: 1}, nil)

	require.NoError(t, tm.created.PublishPurchaseStatus(ctx, event))
}

func TestPublisher_PublishPurchaseStatus_RealJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	ctx := context.Background()

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mocks.NewMockNatsConn(ctrl), js, nil)
	publisher, err := jspublisher.NewPublisher(jspublisher.Config{SubjectPrefix: "sale"}, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	event := testEvent()
	event.State = domain.VerificationStateFailed
	event.Reason = "payment sent to wrong address"

	// No stream name configured, only the dedup option is attached
	js.EXPECT().
		Publish(ctx, "sale.failed", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			assert.Contains(t, string(data), `"state":"failed"`)
			assert.Contains(t, string(data), `"reason":"payment sent to wrong address"`)
			assert.NotContains(t, string(data), `"purchase_id"`)
			return &jetstream.PubAck{}, nil
		})

	require.NoError(t, publisher.PublishPurchaseStatus(ctx, event))
}

func TestPublisher_PublishPurchaseStatus_Errors(t *testing.T) {
	t.Run("marshal failure", func(t *testing.T) {
		tm := setupTest(t)
		event := testEvent()
		tm.json.EXPECT().Marshal(event).Return(nil, errors.New("boom"))

		err := tm.created.PublishPurchaseStatus(context.Background(), event)
		assert.ErrorContains(t, err, "failed to marshal event")
	})

	t.Run("publish failure", func(t *testing.T) {
		tm := setupTest(t)
		event := testEvent()
		tm.json.EXPECT().Marshal(event).Return([]byte(`{}`), nil)
		tm.js.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("no responders"))

		err := tm.created.PublishPurchaseStatus(context.Background(), event)
		assert.ErrorContains(t, err, "failed to publish event")
	})

	t.Run("nil event", func(t *testing.T) {
		tm := setupTest(t)
		assert.Error(t, tm.created.PublishPurchaseStatus(context.Background(), nil))
	})
}

func TestNewPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("connection refused"))

	_, err := jspublisher.NewPublisher(jspublisher.Config{URL: "nats://nowhere:4222"}, natsJS, adapter.NewJSON())
	assert.ErrorContains(t, err, "connection refused")
}

func TestPublisher_Close(t *testing.T) {
	tm := setupTest(t)
	tm.conn.EXPECT().Close()
	tm.created.Close()
}
