// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"github.com/xanzy/go-gitlab"

	"github.com/mattermost/mattermost-issuemigrator/model"
)

const attachmentNotePrefix = "Added File "

// migrateAttachment downloads one attachment to a local file, uploads it to
// the destination project and links it from a note on the issue.
func (m *Migrator) migrateAttachment(ctx context.Context, run *Run, issue *model.SourceIssue, iid int, attachment *model.AttachmentRef) {
	markdown, err := m.transferAttachment(ctx, run.Project, attachment)
	if err != nil {
		mlog.Error("Failed to transfer attachment",
			mlog.Int("source_issue", issue.ID),
			mlog.Int("attachment_id", attachment.ID),
			mlog.String("filename", attachment.Filename),
			mlog.Err(err),
		)
		m.recordItem(ctx, run, ItemAttachment, ResultFailure, attachment.ID, iid)
		return
	}

	run.AddAttachment(&model.UploadedAttachment{
		SourceAttachmentID:     attachment.ID,
		DestinationMarkdownRef: markdown,
	})

	note := &model.Note{Text: attachmentNotePrefix + markdown}
	if _, err := m.createNote(ctx, run.Project, iid, note); err != nil {
		mlog.Error("Failed to link attachment", mlog.Int("source_issue", issue.ID), mlog.Int("attachment_id", attachment.ID), mlog.Err(err))
		m.recordItem(ctx, run, ItemAttachment, ResultFailure, attachment.ID, iid)
		return
	}
	m.recordItem(ctx, run, ItemAttachment, ResultSuccess, attachment.ID, iid)
}

// transferAttachment holds a transfer slot from the download until the
// upload completes and returns the markdown reference of the upload. The
// local copy keeps the source filename, which the destination uses as the
// uploaded name.
func (m *Migrator) transferAttachment(ctx context.Context, project *model.DestinationProject, attachment *model.AttachmentRef) (string, error) {
	if m.transfers != nil {
		if err := m.transfers.Acquire(ctx, 1); err != nil {
			return "", err
		}
		defer m.transfers.Release(1)
	}

	if err := os.MkdirAll(m.Config.AttachmentDir, 0700); err != nil {
		return "", errors.Wrap(err, "failed to create the attachment directory")
	}
	dir, err := os.MkdirTemp(m.Config.AttachmentDir, "attachment-*")
	if err != nil {
		return "", errors.Wrap(err, "failed to create a local directory")
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			mlog.Warn("Failed to remove local attachment copy", mlog.String("path", dir), mlog.Err(err))
		}
	}()

	path := filepath.Join(dir, localFilename(attachment))
	size, err := m.download(ctx, attachment.ContentURL, path)
	if err != nil {
		return "", err
	}
	mlog.Debug("Downloaded attachment", mlog.Int("attachment_id", attachment.ID), mlog.Int("bytes", int(size)))

	uploaded, _, err := m.GitLab.Projects.UploadFile(project.ID, path, gitlab.WithContext(ctx))
	if err != nil {
		return "", errors.Wrap(err, "failed to upload")
	}
	if uploaded == nil || uploaded.Markdown == "" {
		return "", errors.New("upload returned no markdown reference")
	}
	return uploaded.Markdown, nil
}

// download writes the content behind contentURL to path. The file is
// closed before returning so it can be reopened for the upload.
func (m *Migrator) download(ctx context.Context, contentURL, path string) (int64, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create a local file")
	}

	size, err := m.Source.DownloadAttachment(ctx, contentURL, file)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = errors.Wrap(closeErr, "failed to write the local file")
	}
	if err != nil {
		return size, errors.Wrap(err, "failed to download")
	}
	return size, nil
}

// localFilename keeps only the last element of the source filename.
func localFilename(attachment *model.AttachmentRef) string {
	name := filepath.Base(filepath.Clean("/" + attachment.Filename))
	if name == "/" || name == "." {
		return fmt.Sprintf("attachment-%d", attachment.ID)
	}
	return name
}
