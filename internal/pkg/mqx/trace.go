// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/caselab/internal/pkg/mqx"

// TraceMQ 发消息的时候打点，消费端不处理
type TraceMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMQ(q mq.MQ) *TraceMQ {
	return NewTraceMQWithProvider(q, otel.GetTracerProvider())
}

func NewTraceMQWithProvider(q mq.MQ, tp trace.TracerProvider) *TraceMQ {
	return &TraceMQ{MQ: q, tracer: tp.Tracer(instrumentationName)}
}

func (t *TraceMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &traceProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

type traceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (p *traceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := p.start(ctx, m)
	defer span.End()
	res, err := p.Producer.Produce(ctx, m)
	record(span, err)
	return res, err
}

func (p *traceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := p.start(ctx, m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.destination.partition.id", partition))
	res, err := p.Producer.ProduceWithPartition(ctx, m, partition)
	record(span, err)
	return res, err
}

func (p *traceProducer) start(ctx context.Context, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := p.tracer.Start(ctx, p.topic+" publish", trace.WithSpanKind(trace.SpanKindProducer))
	attrs := []attribute.KeyValue{
		attribute.String("messaging.operation", "publish"),
		attribute.String("messaging.destination.name", p.topic),
	}
	if m != nil {
		attrs = append(attrs,
			attribute.String("messaging.message.key", string(m.Key)),
			attribute.Int("messaging.message.body.size", len(m.Value)))
	}
	span.SetAttributes(attrs...)
	return ctx, span
}

func record(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
